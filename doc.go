// Package sift provides a Go client SDK for the Sift Science
// fraud-detection REST APIs: events, scores, labels, decisions,
// verification and webhooks.
//
// Basic usage:
//
//	client, err := sift.New(os.Getenv("SIFT_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Track an event and request a synchronous score
//	scores, err := client.Track(ctx, sift.CreateAccount{
//	    UserID:    "billy_jones_301",
//	    SessionID: "gigtleqddo84l8cm15qe4il",
//	    CreateAccountProperties: sift.CreateAccountProperties{
//	        UserEmail: "billy@example.com",
//	    },
//	}, sift.EventOptions{
//	    ReturnScore: true,
//	    AbuseTypes:  []sift.AbuseType{sift.AccountTakeover},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if scores != nil && scores.AccountTakeover != nil {
//	    fmt.Println("ATO score:", scores.AccountTakeover.Score)
//	}
//
// Account-scoped operations (webhooks, decisions) additionally require
// the Sift account id, configured with WithAccountID.
package sift
