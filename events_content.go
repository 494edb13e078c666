package sift

// Content events tell Sift about user-generated content: job listings,
// products for sale, apartment rentals, dating profiles, blog posts and the
// messages users exchange about them.
//
// See https://sift.com/developers/docs/curl/events-api/reserved-events/create-content

// CreateContent records a user creating content on your site or app. Set
// exactly one of the content payload fields (Comment, Listing, Message,
// Post, Profile, Review) to describe what was created.
type CreateContent struct {
	UserID string `json:"$user_id"`

	// Your unique ID for this piece of content. Content IDs are case
	// sensitive and must be unique across all content types.
	ContentID string `json:"$content_id"`

	// The content payload. Set exactly one.
	Comment *Comment `json:"$comment,omitempty"`
	Listing *Listing `json:"$listing,omitempty"`
	Message *Message `json:"$message,omitempty"`
	Post    *Post    `json:"$post,omitempty"`
	Profile *Profile `json:"$profile,omitempty"`
	Review  *Review  `json:"$review,omitempty"`

	ContentProperties
}

// EventType implements Event.
func (CreateContent) EventType() string { return "$create_content" }

// UpdateContent records a user updating previously created content. The
// existing content is completely replaced, so specify all values, not just
// the ones that changed.
type UpdateContent struct {
	UserID string `json:"$user_id"`

	// Your unique ID for the piece of content being updated.
	ContentID string `json:"$content_id"`

	// The content payload. Set exactly one.
	Comment *Comment `json:"$comment,omitempty"`
	Listing *Listing `json:"$listing,omitempty"`
	Message *Message `json:"$message,omitempty"`
	Post    *Post    `json:"$post,omitempty"`
	Profile *Profile `json:"$profile,omitempty"`
	Review  *Review  `json:"$review,omitempty"`

	ContentProperties
}

// EventType implements Event.
func (UpdateContent) EventType() string { return "$update_content" }

// ContentProperties are the optional reserved fields shared by CreateContent
// and UpdateContent.
type ContentProperties struct {
	SessionID string `json:"$session_id,omitempty"`

	// The visibility state of the content.
	Status ContentStatus `json:"$status,omitempty"`

	// IP address of the request made by the user.
	IP string `json:"$ip,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p ContentProperties) extraFields() map[string]any { return p.Extra }

// Comment is a reply to another piece of content: a comment on a post or
// listing, a photo comment, a forum reply.
type Comment struct {
	// The text of the comment.
	Body string `json:"$body,omitempty"`

	// The email supplied with the content, e.g. for notifications. If an
	// email is used for contacting the author, send it here.
	ContactEmail string `json:"$contact_email,omitempty"`

	// For threaded comments, the ID of the comment being replied to.
	ParentCommentID string `json:"$parent_comment_id,omitempty"`

	// The ID of the content this comment thread hangs off: the post, the
	// listing, the profile.
	RootContentID string `json:"$root_content_id,omitempty"`

	Images []Image `json:"$images,omitempty"`
}

// Listing is an item or service offered on your site: a product for sale, an
// apartment rental, a job posting.
type Listing struct {
	// The title of the listing.
	Subject string `json:"$subject,omitempty"`

	// The text of the listing.
	Body string `json:"$body,omitempty"`

	ContactEmail   string   `json:"$contact_email,omitempty"`
	ContactAddress *Address `json:"$contact_address,omitempty"`

	// Locations tied to the listing, e.g. the address of a rental.
	Locations []Address `json:"$locations,omitempty"`

	// The items being listed for sale.
	ListedItems []Item `json:"$listed_items,omitempty"`

	Images []Image `json:"$images,omitempty"`

	// When the listing expires, for time-limited listings.
	ExpirationTime *UnixMillis `json:"$expiration_time,omitempty"`
}

// Message is a message sent from one user to one or more other users.
type Message struct {
	Subject string `json:"$subject,omitempty"`

	// The text of the message.
	Body string `json:"$body,omitempty"`

	ContactEmail string `json:"$contact_email,omitempty"`

	// The ID of the content this message is about, e.g. the listing a buyer
	// is inquiring on.
	RootContentID string `json:"$root_content_id,omitempty"`

	// The user IDs of the message recipients.
	RecipientUserIDs []string `json:"$recipient_user_ids,omitempty"`

	Images []Image `json:"$images,omitempty"`
}

// Post is standalone content: a blog entry, a forum topic, a status update.
type Post struct {
	Subject string `json:"$subject,omitempty"`

	// The text of the post.
	Body string `json:"$body,omitempty"`

	ContactEmail   string   `json:"$contact_email,omitempty"`
	ContactAddress *Address `json:"$contact_address,omitempty"`

	// Locations tied to the post.
	Locations []Address `json:"$locations,omitempty"`

	// The categories the post is filed under, e.g. ["Furniture", "Sofas"].
	Categories []string `json:"$categories,omitempty"`

	Images []Image `json:"$images,omitempty"`

	// When the post expires, for time-limited posts.
	ExpirationTime *UnixMillis `json:"$expiration_time,omitempty"`
}

// Profile is a user-authored profile: a dating profile, a seller page, a
// company listing.
type Profile struct {
	// The text of the profile.
	Body string `json:"$body,omitempty"`

	ContactEmail   string   `json:"$contact_email,omitempty"`
	ContactAddress *Address `json:"$contact_address,omitempty"`

	Images []Image `json:"$images,omitempty"`

	// The categories the profile is filed under.
	Categories []string `json:"$categories,omitempty"`
}

// Review is a user's review of a product, service or other user.
type Review struct {
	Subject string `json:"$subject,omitempty"`

	// The text of the review.
	Body string `json:"$body,omitempty"`

	ContactEmail string `json:"$contact_email,omitempty"`

	// Locations tied to the review.
	Locations []Address `json:"$locations,omitempty"`

	// The item being reviewed.
	ItemReviewed *Item `json:"$item_reviewed,omitempty"`

	// The ID of the content being reviewed, when reviewing another piece of
	// content rather than an item.
	ReviewedContentID string `json:"$reviewed_content_id,omitempty"`

	// The rating the reviewer gave, e.g. 4.5 stars out of 5.
	Rating float64 `json:"$rating,omitempty"`

	Images []Image `json:"$images,omitempty"`
}

// ContentStatusEvent updates the status of content already sent to Sift
// without resending the rest of the content's information. Useful for long
// lived content such as rentals, dating profiles and job postings. The
// status can also be set through CreateContent or UpdateContent.
type ContentStatusEvent struct {
	UserID string `json:"$user_id"`

	// Your unique ID for the piece of content whose status is changing.
	ContentID string `json:"$content_id"`

	// The new visibility state of the content.
	Status ContentStatus `json:"$status"`

	ContentStatusProperties
}

// EventType implements Event.
func (ContentStatusEvent) EventType() string { return "$content_status" }

// ContentStatusProperties are the optional reserved fields of
// ContentStatusEvent.
type ContentStatusProperties struct {
	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p ContentStatusProperties) extraFields() map[string]any { return p.Extra }

// FlagContent records a user reporting content that may violate your
// policies, e.g. a "Report this post" or "Flag this profile" feature.
type FlagContent struct {
	// The content creator's account ID.
	UserID string `json:"$user_id"`

	// Your unique ID for the piece of content being flagged.
	ContentID string `json:"$content_id"`

	FlagContentProperties
}

// EventType implements Event.
func (FlagContent) EventType() string { return "$flag_content" }

// FlagContentProperties are the optional reserved fields of FlagContent.
type FlagContentProperties struct {
	// The account ID of the user flagging the content.
	FlaggedBy string `json:"$flagged_by,omitempty"`

	// The reason given for the flag.
	Reason ContentFlagReason `json:"$reason,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p FlagContentProperties) extraFields() map[string]any { return p.Extra }
