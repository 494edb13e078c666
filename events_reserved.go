package sift

// Reserved events modeled after the Events API catalog. Required fields are
// declared on the event struct itself; optional reserved fields live on the
// embedded properties struct and are omitted from the wire when zero.
//
// See https://sift.com/developers/docs/curl/events-api/overview

// CreateAccount captures user details at account creation. To capture updates
// to an account after it is initially created, use UpdateAccount.
type CreateAccount struct {
	// The user's internal ID. Users without an assigned ID will not show up
	// in the console.
	UserID string `json:"$user_id"`

	// The user's current session ID, used to tie a user's actions before and
	// after account creation.
	SessionID string `json:"$session_id,omitempty"`

	CreateAccountProperties
}

// EventType implements Event.
func (CreateAccount) EventType() string { return "$create_account" }

// CreateAccountProperties are the optional reserved fields of CreateAccount.
type CreateAccountProperties struct {
	// Email of the user creating the account. If the user's email is also
	// their account ID in your system, set both UserID and UserEmail to it.
	UserEmail string `json:"$user_email,omitempty"`

	// The full name of the user.
	Name string `json:"$name,omitempty"`

	// The primary phone number of the user, E.164 format preferred.
	Phone string `json:"$phone,omitempty"`

	// The ID of the user that referred the current user to your business.
	// Required for detecting referral fraud.
	ReferrerUserID string `json:"$referrer_user_id,omitempty"`

	// The payment method(s) associated with this account.
	PaymentMethods []PaymentMethod `json:"$payment_methods,omitempty"`

	BillingAddress  *Address `json:"$billing_address,omitempty"`
	ShippingAddress *Address `json:"$shipping_address,omitempty"`

	// If the user signed up with a social identity provider, name it here.
	SocialSignOnType SocialSignOn `json:"$social_sign_on_type,omitempty"`

	// Browser or App describe the client used. Set at most one of them.
	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	// The type(s) of the account, e.g. ["merchant", "premium"].
	AccountTypes []AccountType `json:"$account_types,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	// Extra carries any non-reserved fields to record with the event.
	Extra map[string]any `json:"-"`
}

func (p CreateAccountProperties) extraFields() map[string]any { return p.Extra }

// UpdateAccount records changes to the user's account information. For
// accounts created before integrating, call UpdateAccount directly and the
// account is inferred to predate the integration.
type UpdateAccount struct {
	UserID string `json:"$user_id"`

	UpdateAccountProperties
}

// EventType implements Event.
func (UpdateAccount) EventType() string { return "$update_account" }

// UpdateAccountProperties are the optional reserved fields of UpdateAccount.
type UpdateAccountProperties struct {
	// Set when the user changed their password.
	ChangedPassword bool `json:"$changed_password,omitempty"`

	UserEmail      string `json:"$user_email,omitempty"`
	Name           string `json:"$name,omitempty"`
	Phone          string `json:"$phone,omitempty"`
	ReferrerUserID string `json:"$referrer_user_id,omitempty"`

	PaymentMethods  []PaymentMethod `json:"$payment_methods,omitempty"`
	BillingAddress  *Address        `json:"$billing_address,omitempty"`
	ShippingAddress *Address        `json:"$shipping_address,omitempty"`

	SocialSignOnType SocialSignOn `json:"$social_sign_on_type,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	AccountTypes []AccountType `json:"$account_types,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p UpdateAccountProperties) extraFields() map[string]any { return p.Extra }

// Login records a user's attempt to log in.
type Login struct {
	UserID    string `json:"$user_id"`
	SessionID string `json:"$session_id,omitempty"`

	LoginProperties
}

// EventType implements Event.
func (Login) EventType() string { return "$login" }

// LoginProperties are the optional reserved fields of Login.
type LoginProperties struct {
	// The success or failure of the login attempt.
	LoginStatus LoginStatus `json:"$login_status,omitempty"`

	UserEmail string `json:"$user_email,omitempty"`

	// IP address of the user that is logging in.
	IP string `json:"$ip,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	// The reason the login failed.
	FailureReason LoginFailureReason `json:"$failure_reason,omitempty"`

	// The username entered at the login prompt.
	Username string `json:"$username,omitempty"`

	SocialSignOnType SocialSignOn `json:"$social_sign_on_type,omitempty"`

	AccountTypes []AccountType `json:"$account_types,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p LoginProperties) extraFields() map[string]any { return p.Extra }

// Logout records a user logging out.
type Logout struct {
	UserID string `json:"$user_id"`

	LogoutProperties
}

// EventType implements Event.
func (Logout) EventType() string { return "$logout" }

// LogoutProperties are the optional reserved fields of Logout.
type LogoutProperties struct {
	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p LogoutProperties) extraFields() map[string]any { return p.Extra }

// CreateOrder records a user submitting an order for products or services
// they intend to purchase. Include the items ordered, the payment
// instrument(s) and user identification data.
type CreateOrder struct {
	UserID string `json:"$user_id"`

	OrderProperties
}

// EventType implements Event.
func (CreateOrder) EventType() string { return "$create_order" }

// UpdateOrder records a user updating a previously submitted order. The
// existing order is completely replaced, so specify all values, not just the
// ones that changed. If no matching order ID is found, a new order is
// created.
type UpdateOrder struct {
	UserID string `json:"$user_id"`

	OrderProperties
}

// EventType implements Event.
func (UpdateOrder) EventType() string { return "$update_order" }

// OrderProperties are the optional reserved fields shared by CreateOrder and
// UpdateOrder.
type OrderProperties struct {
	// Required if no UserID is provided.
	SessionID string `json:"$session_id,omitempty"`

	// The ID for tracking this order in your system.
	OrderID string `json:"$order_id,omitempty"`

	UserEmail string `json:"$user_email,omitempty"`

	// Phone number used to send a one-time password when required,
	// E.164 format.
	VerificationPhoneNumber string `json:"$verification_phone_number,omitempty"`

	// Total order amount in micros in the base unit of CurrencyCode.
	Amount Micros `json:"$amount,omitempty"`

	// ISO-4217 currency code for the amount.
	CurrencyCode string `json:"$currency_code,omitempty"`

	BillingAddress *Address `json:"$billing_address,omitempty"`

	// Orders may be paid for with multiple instruments, so this is a list.
	PaymentMethods []PaymentMethod `json:"$payment_methods,omitempty"`

	ShippingAddress *Address `json:"$shipping_address,omitempty"`

	// Whether the user requested priority or expedited shipping.
	ExpeditedShipping bool `json:"$expedited_shipping,omitempty"`

	// The list of items ordered: physical products, gift cards, in-app
	// purchases and so on.
	Items []Item `json:"$items,omitempty"`

	// For marketplace businesses, the seller's user ID.
	SellerUserID string `json:"$seller_user_id,omitempty"`

	ShippingMethod          ShippingMethod `json:"$shipping_method,omitempty"`
	ShippingCarrier         string         `json:"$shipping_carrier,omitempty"`
	ShippingTrackingNumbers []string       `json:"$shipping_tracking_numbers,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p OrderProperties) extraFields() map[string]any { return p.Extra }

// OrderStatusEvent tracks the order processing workflow of a previously
// submitted order, e.g. held for review, canceled due to suspected fraud, or
// fulfilled. Send it as many times as the order's status changes.
type OrderStatusEvent struct {
	UserID string `json:"$user_id"`

	// The ID for tracking this order in your system.
	OrderID string `json:"$order_id"`

	// The high-level state of the order.
	Status OrderStatus `json:"$order_status"`

	OrderStatusProperties
}

// EventType implements Event.
func (OrderStatusEvent) EventType() string { return "$order_status" }

// OrderStatusProperties are the optional reserved fields of OrderStatusEvent.
type OrderStatusProperties struct {
	// The reason for a cancellation.
	Reason OrderCancellationReason `json:"$reason,omitempty"`

	// The source of the status change decision.
	Source DecisionSource `json:"$source,omitempty"`

	// The analyst who made the decision, if manual.
	Analyst string `json:"$analyst,omitempty"`

	// Alternative to Source and Analyst, the ID of the Sift Action webhook
	// that triggered the status change.
	WebhookID string `json:"$webhook_id,omitempty"`

	// Any additional information about this status change.
	Description string `json:"$description,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p OrderStatusProperties) extraFields() map[string]any { return p.Extra }

// Transaction records an attempt to exchange money, credit or other tokens of
// value.
type Transaction struct {
	UserID string `json:"$user_id"`

	// Total transaction amount in micros in the base unit of CurrencyCode.
	Amount Micros `json:"$amount"`

	// ISO-4217 currency code for the amount.
	CurrencyCode string `json:"$currency_code"`

	TransactionProperties
}

// EventType implements Event.
func (Transaction) EventType() string { return "$transaction" }

// TransactionProperties are the optional reserved fields of Transaction.
type TransactionProperties struct {
	UserEmail               string `json:"$user_email,omitempty"`
	VerificationPhoneNumber string `json:"$verification_phone_number,omitempty"`

	Type TransactionType `json:"$transaction_type,omitempty"`

	// If the transaction was rejected by the payment gateway, set to
	// TransactionFailure.
	Status TransactionStatus `json:"$transaction_status,omitempty"`

	// The ID for this order in your system.
	OrderID string `json:"$order_id,omitempty"`

	// The ID identifying this transaction. Links related parts of the same
	// transaction together, e.g. a refund to its original sale.
	TransactionID string `json:"$transaction_id,omitempty"`

	BillingAddress *Address `json:"$billing_address,omitempty"`

	// The payment instrument for this transaction. Unlike orders, a
	// transaction carries exactly one.
	PaymentMethod *PaymentMethod `json:"$payment_method,omitempty"`

	ShippingAddress *Address `json:"$shipping_address,omitempty"`

	SessionID    string `json:"$session_id,omitempty"`
	SellerUserID string `json:"$seller_user_id,omitempty"`

	// For transfers, the user ID of the user receiving the transfer.
	// Requires Type to be TransactionTransfer.
	TransferRecipientUserID string `json:"$transfer_recipient_user_id,omitempty"`

	// The category of a decline sent by the payment service provider. Only
	// send when Status is TransactionFailure.
	DeclineCategory DeclineCategory `json:"$decline_category,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p TransactionProperties) extraFields() map[string]any { return p.Extra }

// Chargeback captures a chargeback reported on a transaction. Send it
// multiple times to record changes to the chargeback state.
type Chargeback struct {
	// The ID of the order the chargeback is filed against. Optional when
	// TransactionID is present.
	OrderID string `json:"$order_id,omitempty"`

	// The ID of the transaction the chargeback is filed against. Optional
	// when OrderID is present.
	TransactionID string `json:"$transaction_id,omitempty"`

	ChargebackProperties
}

// EventType implements Event.
func (Chargeback) EventType() string { return "$chargeback" }

// ChargebackProperties are the optional reserved fields of Chargeback.
type ChargebackProperties struct {
	// The user's account ID, recommended for better chargeback matching.
	UserID string `json:"$user_id,omitempty"`

	State  ChargebackState  `json:"$chargeback_state,omitempty"`
	Reason ChargebackReason `json:"$chargeback_reason,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p ChargebackProperties) extraFields() map[string]any { return p.Extra }

// VerificationEvent models a user responding to a verification challenge,
// e.g. entering a one-time passcode sent to their email, phone or app.
type VerificationEvent struct {
	UserID string `json:"$user_id"`

	// The user's current session ID.
	SessionID string `json:"$session_id"`

	// The status of the verification attempt.
	Status VerificationStatus `json:"$status"`

	VerificationProperties
}

// EventType implements Event.
func (VerificationEvent) EventType() string { return "$verification" }

// VerificationProperties are the optional reserved fields of
// VerificationEvent.
type VerificationProperties struct {
	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	// The type of the reserved event being verified.
	VerifiedEvent VerifiedEvent `json:"$verified_event,omitempty"`

	// The ID of the entity impacted by the event being verified: the session
	// ID for a login, the order ID for an order, the content ID for content.
	VerifiedEntityID string `json:"$verified_entity_id,omitempty"`

	// The method of verification being performed.
	VerificationType VerificationType `json:"$verification_type,omitempty"`

	// The phone number, email address or security question used for
	// verification. Never send the answer to a security question.
	VerifiedValue string `json:"$verified_value,omitempty"`

	// The trigger for the verification.
	Reason VerificationReason `json:"$reason,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p VerificationProperties) extraFields() map[string]any { return p.Extra }

// LabelEvent marks a user as fraudulent or legitimate for one abuse type.
// Most callers should use Client.Label, which routes the event through the
// labels endpoint for a specific user.
type LabelEvent struct {
	// True if the user is engaging in abusive activity, false if the user is
	// engaging in valid activity.
	IsFraud bool `json:"$is_fraud"`

	// The type of abuse being labeled. Labeling the specific abuse type
	// teaches the models the matching behavior patterns.
	AbuseType AbuseType `json:"$abuse_type"`

	// Freeform annotation on why the label was added.
	Description string `json:"$description,omitempty"`

	// The original source of the label information, e.g. a payment gateway
	// or manual review.
	Source string `json:"$source,omitempty"`

	// Identifier of the analyst who applied the label.
	Analyst string `json:"$analyst,omitempty"`

	Extra map[string]any `json:"-"`
}

// EventType implements Event.
func (LabelEvent) EventType() string { return "$label" }

func (e LabelEvent) extraFields() map[string]any { return e.Extra }

// AddItemToCart records a user adding an item to their shopping cart or
// list.
type AddItemToCart struct {
	UserID    string `json:"$user_id"`
	SessionID string `json:"$session_id,omitempty"`

	AddItemToCartProperties
}

// EventType implements Event.
func (AddItemToCart) EventType() string { return "$add_item_to_cart" }

// AddItemToCartProperties are the optional reserved fields of AddItemToCart.
type AddItemToCartProperties struct {
	// The product being added to the cart.
	Item *Item `json:"$item,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p AddItemToCartProperties) extraFields() map[string]any { return p.Extra }

// RemoveItemFromCart records a user removing an item from their shopping
// cart or list.
type RemoveItemFromCart struct {
	UserID    string `json:"$user_id"`
	SessionID string `json:"$session_id,omitempty"`

	RemoveItemFromCartProperties
}

// EventType implements Event.
func (RemoveItemFromCart) EventType() string { return "$remove_item_from_cart" }

// RemoveItemFromCartProperties are the optional reserved fields of
// RemoveItemFromCart.
type RemoveItemFromCartProperties struct {
	// The product being removed from the cart.
	Item *Item `json:"$item,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p RemoveItemFromCartProperties) extraFields() map[string]any { return p.Extra }

// AddPromotion records a user adding one or more promotions to their
// account. Send failed attempts too; they may help spot potential abuse.
type AddPromotion struct {
	UserID string `json:"$user_id"`

	AddPromotionProperties
}

// EventType implements Event.
func (AddPromotion) EventType() string { return "$add_promotion" }

// AddPromotionProperties are the optional reserved fields of AddPromotion.
type AddPromotionProperties struct {
	// The promotions being added.
	Promotions []Promotion `json:"$promotions,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p AddPromotionProperties) extraFields() map[string]any { return p.Extra }

// LinkSessionToUser associates data from a specific session with a user.
// Generally used only in anonymous checkout workflows.
type LinkSessionToUser struct {
	// The session to associate.
	SessionID string `json:"$session_id"`

	// The user the session belongs to.
	UserID string `json:"$user_id"`

	Extra map[string]any `json:"-"`
}

// EventType implements Event.
func (LinkSessionToUser) EventType() string { return "$link_session_to_user" }

func (e LinkSessionToUser) extraFields() map[string]any { return e.Extra }

// SecurityNotification captures the lifecycle of a suspicious-activity
// notification sent to a user: issuing the notification and the user's
// response to it, e.g. confirming or denying that a login from a new device
// was them.
type SecurityNotification struct {
	UserID    string `json:"$user_id"`
	SessionID string `json:"$session_id"`

	// The follow-up action taken by the notified user.
	NotificationStatus string `json:"$notification_status"`

	SecurityNotificationProperties
}

// EventType implements Event.
func (SecurityNotification) EventType() string { return "$security_notification" }

// SecurityNotificationProperties are the optional reserved fields of
// SecurityNotification.
type SecurityNotificationProperties struct {
	// The channel the notification was delivered through.
	NotificationType SecurityNotificationType `json:"$notification_type,omitempty"`

	// The email address or phone number the notification was sent to.
	NotifiedValue string `json:"$notified_value,omitempty"`

	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p SecurityNotificationProperties) extraFields() map[string]any { return p.Extra }

// UpdatePassword records a password change, whether initiated by the user or
// the service.
type UpdatePassword struct {
	UserID string `json:"$user_id"`

	// Why the password was updated or an update was attempted. The process
	// may trigger a verification with VerifiedUpdatePassword.
	Reason UpdatePasswordReason `json:"$reason"`

	// The status of the password update attempt.
	Status UpdatePasswordStatus `json:"$status"`

	UpdatePasswordProperties
}

// EventType implements Event.
func (UpdatePassword) EventType() string { return "$update_password" }

// UpdatePasswordProperties are the optional reserved fields of
// UpdatePassword.
type UpdatePasswordProperties struct {
	Browser *Browser `json:"$browser,omitempty"`
	App     *App     `json:"$app,omitempty"`

	BrandName   string `json:"$brand_name,omitempty"`
	SiteCountry string `json:"$site_country,omitempty"`
	SiteDomain  string `json:"$site_domain,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p UpdatePasswordProperties) extraFields() map[string]any { return p.Extra }

// CustomEvent records an action unique to your application, under a type
// name of your choosing. Custom type names must not start with "$".
type CustomEvent struct {
	// The wire "$type" of the event, e.g. "made_bid".
	Type string `json:"-"`

	UserID    string `json:"$user_id,omitempty"`
	SessionID string `json:"$session_id,omitempty"`

	// Fields carries the custom payload of the event.
	Fields map[string]any `json:"-"`
}

// EventType implements Event.
func (e CustomEvent) EventType() string { return e.Type }

func (e CustomEvent) extraFields() map[string]any { return e.Fields }
