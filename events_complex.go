package sift

// Address is a physical address, e.g. a billing or shipping address. Partial
// addresses are fine; send as much as you have.
type Address struct {
	// Provide the full name associated with the address.
	Name string `json:"$name,omitempty"`

	Address1 string `json:"$address_1,omitempty"`
	Address2 string `json:"$address_2,omitempty"`
	City     string `json:"$city,omitempty"`

	// The region portion of the address, e.g. a state in the US.
	Region string `json:"$region,omitempty"`

	// ISO-3166 country code.
	Country string `json:"$country,omitempty"`
	Zipcode string `json:"$zipcode,omitempty"`

	// The phone number associated with this address, in E.164 format when
	// possible.
	Phone string `json:"$phone,omitempty"`
}

// App describes the app, OS and device a user action was performed with.
// An event may carry App or Browser, not both.
type App struct {
	OS                 string `json:"$os,omitempty"`
	OSVersion          string `json:"$os_version,omitempty"`
	DeviceManufacturer string `json:"$device_manufacturer,omitempty"`
	DeviceModel        string `json:"$device_model,omitempty"`
	DeviceUniqueID     string `json:"$device_unique_id,omitempty"`
	Name               string `json:"$app_name,omitempty"`
	Version            string `json:"$app_version,omitempty"`

	// Language the client is using, as an ISO-3166 code.
	ClientLanguage string `json:"$client_language,omitempty"`
}

// Browser describes the browser a user action was performed with.
// An event may carry Browser or App, not both.
type Browser struct {
	// The user agent of the browser.
	UserAgent string `json:"$user_agent"`

	// The language(s) the user declared in the Accept-Language header,
	// e.g. "en-US" or "en-US,de".
	AcceptLanguage string `json:"$accept_language,omitempty"`

	// The language(s) of the user interface, e.g. "en-US".
	ContentLanguage string `json:"$content_language,omitempty"`
}

// Item is a product or service a user can order.
type Item struct {
	// Your internal ID for the item.
	ID string `json:"$item_id,omitempty"`

	ProductTitle string `json:"$product_title,omitempty"`

	// Item unit price in micros, in the base unit of the CurrencyCode.
	Price Micros `json:"$price,omitempty"`

	// ISO-4217 currency code for the price.
	CurrencyCode string `json:"$currency_code,omitempty"`
	Quantity     int    `json:"$quantity,omitempty"`

	UPC  string `json:"$upc,omitempty"`
	SKU  string `json:"$sku,omitempty"`
	ISBN string `json:"$isbn,omitempty"`

	Brand        string   `json:"$brand,omitempty"`
	Manufacturer string   `json:"$manufacturer,omitempty"`
	Category     string   `json:"$category,omitempty"`
	Tags         []string `json:"$tags,omitempty"`
	Color        string   `json:"$color,omitempty"`
	Size         string   `json:"$size,omitempty"`
}

// Image describes an image attached to user-generated content. Sift never
// fetches the linked image; send the hash and metadata you have.
type Image struct {
	// MD5 hash of the image file.
	MD5Hash string `json:"$md5_hash,omitempty"`

	// Link to the image.
	Link string `json:"$link,omitempty"`

	// Any caption or alt text associated with the image.
	Description string `json:"$description,omitempty"`
}

// Discount models a monetary discount attached to a promotion, e.g. $25 off
// an order of $100 or more, or 10% off.
type Discount struct {
	// The percentage discount, e.g. 0.1 for a 10% discount.
	PercentageOff float64 `json:"$percentage_off,omitempty"`

	// The discount amount in micros, in the base unit of CurrencyCode.
	Amount Micros `json:"$amount,omitempty"`

	// ISO-4217 currency code for the amount.
	CurrencyCode string `json:"$currency_code,omitempty"`

	// The minimum order amount, in micros, for the discount to apply.
	MinimumPurchaseAmount Micros `json:"$minimum_purchase_amount,omitempty"`
}

// CreditPoint models monetary and non-monetary rewards for a promotion:
// in-game currency, stored account value, MBs of storage, frequent flyer
// miles and so on.
type CreditPoint struct {
	// The amount of credit points awarded.
	Amount int64 `json:"$amount,omitempty"`

	// The type of the credit points, e.g. "reward points".
	Type string `json:"$credit_point_type,omitempty"`
}

// Promotion describes a promotion added to an account or order. It supports
// both monetary (a $25 coupon on a first order) and non-monetary (1000 in
// game points to refer a friend) promotions; most promotions carry a
// Discount or a CreditPoint, and both may be set at once.
type Promotion struct {
	// Your ID for this promotion, ideally unique across users,
	// e.g. "BackToSchool2016".
	ID string `json:"$promotion_id,omitempty"`

	// Whether adding the promotion to the account succeeded. Sending failed
	// attempts too may help spot potential abuse.
	Status PromotionStatus `json:"$status,omitempty"`

	// When adding the promotion failed, why it failed.
	FailureReason PromotionFailureReason `json:"$failure_reason,omitempty"`

	// Freeform text describing the promotion.
	Description string `json:"$description,omitempty"`

	// The account ID of the user who referred the user to this promotion.
	ReferrerUserID string `json:"$referrer_user_id,omitempty"`

	Discount    *Discount    `json:"$discount,omitempty"`
	CreditPoint *CreditPoint `json:"$credit_point,omitempty"`
}

// PaymentMethodVerificationStatus is the state of a payment method's
// verification, e.g. a CVV check performed by the payment processor.
type PaymentMethodVerificationStatus string

const (
	PaymentVerificationSuccess PaymentMethodVerificationStatus = "$success"
	PaymentVerificationFailure PaymentMethodVerificationStatus = "$failure"
	PaymentVerificationPending PaymentMethodVerificationStatus = "$pending"
)

// PaymentMethod describes an instrument used to pay for an order or
// transaction.
type PaymentMethod struct {
	PaymentType PaymentType `json:"$payment_type,omitempty"`

	// Name of the payment gateway used, e.g. "$stripe" or "$braintree".
	PaymentGateway string `json:"$payment_gateway,omitempty"`

	// First six digits of the card number.
	CardBIN string `json:"$card_bin,omitempty"`

	// Last four digits of the card number.
	CardLast4 string `json:"$card_last4,omitempty"`

	// Response code from the AVS address verification system.
	AVSResultCode string `json:"$avs_result_code,omitempty"`

	// Response code from the CVV verification system.
	CVVResultCode string `json:"$cvv_result_code,omitempty"`

	VerificationStatus PaymentMethodVerificationStatus `json:"$verification_status,omitempty"`
}
