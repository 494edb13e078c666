package sift

// Reserved field enumerations accepted by the Events API. Values are sent on
// the wire exactly as defined, "$" prefix included.
//
// See https://sift.com/developers/docs/curl/events-api/fields

// LoginStatus represents the success or failure of a login attempt.
type LoginStatus string

const (
	LoginSuccess LoginStatus = "$success"
	LoginFailure LoginStatus = "$failure"
)

// LoginFailureReason captures why a login attempt failed.
type LoginFailureReason string

const (
	// Username never existed on this site.
	AccountUnknown LoginFailureReason = "$account_unknown"
	// Username exists, but the account is locked or temporarily deactivated.
	AccountSuspended LoginFailureReason = "$account_suspended"
	// Username exists, account was closed or permanently deactivated.
	AccountDisabled LoginFailureReason = "$account_disabled"
	// Username exists, but the password is incorrect for this user.
	WrongPassword LoginFailureReason = "$wrong_password"
)

// SocialSignOn names the social identity provider a user signed in with.
type SocialSignOn string

const (
	SignOnFacebook  SocialSignOn = "$facebook"
	SignOnGoogle    SocialSignOn = "$google"
	SignOnLinkedIn  SocialSignOn = "$linkedin"
	SignOnTwitter   SocialSignOn = "$twitter"
	SignOnYahoo     SocialSignOn = "$yahoo"
	SignOnMicrosoft SocialSignOn = "$microsoft"
	SignOnAmazon    SocialSignOn = "$amazon"
	SignOnApple     SocialSignOn = "$apple"
	SignOnOther     SocialSignOn = "$other"
)

// AccountType captures the type of an account, e.g. "merchant" or "shopper".
// An account may carry multiple types at once.
type AccountType string

const (
	AccountMerchant AccountType = "merchant"
	AccountShopper  AccountType = "shopper"
	AccountRegular  AccountType = "regular"
	AccountPremium  AccountType = "premium"
)

// OrderStatus indicates the high-level state of an order.
type OrderStatus string

const (
	OrderApproved  OrderStatus = "$approved"
	OrderCanceled  OrderStatus = "$canceled"
	OrderHeld      OrderStatus = "$held"
	OrderFulfilled OrderStatus = "$fulfilled"
	OrderReturned  OrderStatus = "$returned"
)

// OrderCancellationReason is the reason an order was canceled.
type OrderCancellationReason string

const (
	CancelledPaymentRisk OrderCancellationReason = "$payment_risk"
	CancelledAbuse       OrderCancellationReason = "$abuse"
	CancelledPolicy      OrderCancellationReason = "$policy"
	CancelledOther       OrderCancellationReason = "$other"
)

// DecisionSource records what initiated an order status change.
type DecisionSource string

const (
	SourceAutomated    DecisionSource = "$automated"
	SourceManualReview DecisionSource = "$manual_review"
)

// TransactionType is the type of transaction being recorded.
type TransactionType string

const (
	TransactionSale       TransactionType = "$sale"
	TransactionAuthorize  TransactionType = "$authorize"
	TransactionCapture    TransactionType = "$capture"
	TransactionVoid       TransactionType = "$void"
	TransactionRefund     TransactionType = "$refund"
	TransactionDeposit    TransactionType = "$deposit"
	TransactionWithdrawal TransactionType = "$withdrawal"
	TransactionTransfer   TransactionType = "$transfer"
	TransactionBuy        TransactionType = "$buy"
	TransactionSell       TransactionType = "$sell"
	TransactionSend       TransactionType = "$send"
	TransactionReceive    TransactionType = "$receive"
)

// TransactionStatus indicates the status of a transaction.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "$success"
	TransactionFailure TransactionStatus = "$failure"
	TransactionPending TransactionStatus = "$pending"
)

// DeclineCategory is the category of a transaction decline sent by the
// payment service provider. Only send it with failed transactions.
type DeclineCategory string

const (
	DeclineFraud                DeclineCategory = "$fraud"
	DeclineLostOrStolen         DeclineCategory = "$lost_or_stolen"
	DeclineRisky                DeclineCategory = "$risky"
	DeclineBank                 DeclineCategory = "$bank_decline"
	DeclineInvalid              DeclineCategory = "$invalid"
	DeclineExpired              DeclineCategory = "$expired"
	DeclineInsufficientFunds    DeclineCategory = "$insufficient_funds"
	DeclineLimitExceeded        DeclineCategory = "$limit_exceeded"
	DeclineVerificationRequired DeclineCategory = "$additional_verification_required"
	DeclineInvalidVerification  DeclineCategory = "$invalid_verification"
	DeclineOther                DeclineCategory = "$other"
)

// ChargebackState is the current state of a chargeback.
type ChargebackState string

const (
	ChargebackReceived ChargebackState = "$received"
	ChargebackAccepted ChargebackState = "$accepted"
	ChargebackDisputed ChargebackState = "$disputed"
	ChargebackWon      ChargebackState = "$won"
	ChargebackLost     ChargebackState = "$lost"
)

// ChargebackReason captures the reason given for a chargeback.
type ChargebackReason string

const (
	ChargebackFraud               ChargebackReason = "$fraud"
	ChargebackDuplicate           ChargebackReason = "$duplicate"
	ChargebackProductNotReceived  ChargebackReason = "$product_not_received"
	ChargebackProductUnacceptable ChargebackReason = "$product_unacceptable"
	ChargebackOther               ChargebackReason = "$other"
)

// VerificationStatus is the status of an OTP verification attempt.
type VerificationStatus string

const (
	VerificationSuccess VerificationStatus = "$success"
	VerificationFailure VerificationStatus = "$failure"
	VerificationPending VerificationStatus = "$pending"
)

// VerifiedEvent is the type of reserved event being verified.
type VerifiedEvent string

const (
	VerifiedLogin          VerifiedEvent = "$login"
	VerifiedCreateAccount  VerifiedEvent = "$create_account"
	VerifiedCreateOrder    VerifiedEvent = "$create_order"
	VerifiedCreateContent  VerifiedEvent = "$create_content"
	VerifiedTransaction    VerifiedEvent = "$transaction"
	VerifiedUpdateAccount  VerifiedEvent = "$update_account"
	VerifiedUpdatePassword VerifiedEvent = "$update_password"
)

// VerificationType is the method used to verify the user.
type VerificationType string

const (
	VerifySMS             VerificationType = "$sms"
	VerifyPhoneCall       VerificationType = "$phone_call"
	VerifyEmail           VerificationType = "$email"
	VerifyAppTFA          VerificationType = "$app_tfa"
	VerifyCaptcha         VerificationType = "$captcha"
	VerifySharedKnowledge VerificationType = "$shared_knowledge"
	VerifyFace            VerificationType = "$face"
	VerifyFingerprint     VerificationType = "$fingerprint"
	VerifyPush            VerificationType = "$push"
	VerifySecurityKey     VerificationType = "$security_key"
)

// VerificationReason is the trigger for a verification.
type VerificationReason string

const (
	ReasonUserSetting   VerificationReason = "$user_setting"
	ReasonManualReview  VerificationReason = "$manual_review"
	ReasonAutomatedRule VerificationReason = "$automated_rule"
)

// ContentStatus is the visibility state of a piece of user-generated
// content. Useful for long lived content such as rentals, dating profiles
// and job postings.
type ContentStatus string

const (
	// The content has been created but not published.
	ContentDraft ContentStatus = "$draft"
	// The content is awaiting approval before publication.
	ContentPending ContentStatus = "$pending"
	// The content is live.
	ContentActive ContentStatus = "$active"
	// The content is live but temporarily hidden, e.g. a rental marked as
	// unavailable by its owner.
	ContentPaused ContentStatus = "$paused"
	// The content was taken down by the user who created it.
	ContentDeletedByUser ContentStatus = "$deleted_by_user"
	// The content was taken down by your business.
	ContentDeletedByCompany ContentStatus = "$deleted_by_company"
)

// ContentFlagReason is the reason a user gave for reporting content.
type ContentFlagReason string

const (
	FlaggedToxic      ContentFlagReason = "$toxic"
	FlaggedIrrelevant ContentFlagReason = "$irrelevant"
	FlaggedCommercial ContentFlagReason = "$commercial"
	FlaggedPhishing   ContentFlagReason = "$phishing"
	FlaggedPrivate    ContentFlagReason = "$private"
	FlaggedScam       ContentFlagReason = "$scam"
	FlaggedCopyright  ContentFlagReason = "$copyright"
	FlaggedOther      ContentFlagReason = "$other"
)

// UpdatePasswordReason is why a password was updated or an update was
// attempted.
type UpdatePasswordReason string

const (
	// The user updated their password voluntarily.
	PasswordUserUpdate UpdatePasswordReason = "$user_update"
	// The user went through a forgot-password flow.
	PasswordForgotPassword UpdatePasswordReason = "$forgot_password"
	// The service forced a password reset.
	PasswordForcedReset UpdatePasswordReason = "$forced_reset"
)

// UpdatePasswordStatus is the status of a password update attempt.
type UpdatePasswordStatus string

const (
	PasswordUpdateSuccess UpdatePasswordStatus = "$success"
	PasswordUpdateFailure UpdatePasswordStatus = "$failure"
	PasswordUpdatePending UpdatePasswordStatus = "$pending"
)

// SecurityNotificationType is the channel a security notification was
// delivered through.
type SecurityNotificationType string

const (
	NotifyEmail SecurityNotificationType = "$email"
	NotifySMS   SecurityNotificationType = "$sms"
	NotifyPush  SecurityNotificationType = "$push"
)

// PromotionStatus records whether adding a promotion to an account
// succeeded.
type PromotionStatus string

const (
	PromotionSuccess PromotionStatus = "$success"
	PromotionFailure PromotionStatus = "$failure"
)

// PromotionFailureReason is why adding a promotion failed.
type PromotionFailureReason string

const (
	PromotionAlreadyUsed   PromotionFailureReason = "$already_used"
	PromotionInvalidCode   PromotionFailureReason = "$invalid_code"
	PromotionNotApplicable PromotionFailureReason = "$not_applicable"
	PromotionExpired       PromotionFailureReason = "$expired"
)

// PaymentType is the general method of payment.
type PaymentType string

const (
	PaymentCash                   PaymentType = "$cash"
	PaymentCheck                  PaymentType = "$check"
	PaymentCreditCard             PaymentType = "$credit_card"
	PaymentCryptoCurrency         PaymentType = "$crypto_currency"
	PaymentDebitCard              PaymentType = "$debit_card"
	PaymentDigitalWallet          PaymentType = "$digital_wallet"
	PaymentElectronicFundTransfer PaymentType = "$electronic_fund_transfer"
	PaymentFinancing              PaymentType = "$financing"
	PaymentGiftCard               PaymentType = "$gift_card"
	PaymentInvoice                PaymentType = "$invoice"
	PaymentInAppPurchase          PaymentType = "$in_app_purchase"
	PaymentMoneyOrder             PaymentType = "$money_order"
	PaymentPoints                 PaymentType = "$points"
	PaymentPrepaidCard            PaymentType = "$prepaid_card"
	PaymentStoreCredit            PaymentType = "$store_credit"
	PaymentThirdPartyProcessor    PaymentType = "$third_party_processor"
	PaymentVoucher                PaymentType = "$voucher"
	PaymentSEPACredit             PaymentType = "$sepa_credit"
	PaymentSEPAInstantCredit      PaymentType = "$sepa_instant_credit"
	PaymentSEPADirectDebit        PaymentType = "$sepa_direct_debit"
	PaymentACHCredit              PaymentType = "$ach_credit"
	PaymentACHDebit               PaymentType = "$ach_debit"
	PaymentWireCredit             PaymentType = "$wire_credit"
	PaymentWireDebit              PaymentType = "$wire_debit"
)

// ShippingMethod indicates the method of delivery to the user.
type ShippingMethod string

const (
	ShippingElectronic ShippingMethod = "$electronic"
	ShippingPhysical   ShippingMethod = "$physical"
)
