package models

type Payment struct {
	ID               string  `json:"_id"`
	UserID           string  `json:"userId"`
	Amount           float64 `json:"amount"`
	Date             string  `json:"date"`
	PaymentMode      string  `json:"payment_mode"`
	PaymentReference string  `json:"payment_reference"`
	PaymentType      string  `json:"payment_type"`
	Photo            string  `json:"photo"`
	ReceiptNumber    string  `json:"reciept_number"`
	Remarks          string  `json:"remarks"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
	Version          int     `json:"__v"`
}

// PaymentInput is the body of payment create; ID is only used on update and
// selects the URL.
type PaymentInput struct {
	ID               string `json:"id,omitempty"`
	UserID           string `json:"userId"`
	Amount           string `json:"amount"`
	Date             string `json:"date"`
	PaymentMode      string `json:"payment_mode"`
	PaymentReference string `json:"payment_reference"`
	PaymentType      string `json:"payment_type"`
	Photo            string `json:"photo"`
	ReceiptNumber    string `json:"reciept_number"`
	Remarks          string `json:"remarks"`
}

type Payout struct {
	ID                     string  `json:"_id"`
	UserID                 string  `json:"userId"`
	DeadMemberID           string  `json:"deadMemberId"`
	NomineeID              string  `json:"nomineeId"`
	PaymentAmount          float64 `json:"payment_amount"`
	PaymentDate            string  `json:"payment_date"`
	PaymentToPerson        string  `json:"payment_to_person"`
	PaymentByPerson        string  `json:"payment_by_person"`
	PaymentChequePhoto     string  `json:"payment_cheque_photo"`
	AadhaarCardOfRecipient string  `json:"adhaar_card_no_of_reciever"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
	Version                int     `json:"__v"`
}

type PayoutCreate struct {
	UserID                 string  `json:"userId"`
	DeadMemberID           string  `json:"deadMemberId"`
	NomineeID              string  `json:"nomineeId"`
	PaymentAmount          float64 `json:"payment_amount"`
	PaymentDate            string  `json:"payment_date"`
	PaymentToPerson        string  `json:"payment_to_person"`
	PaymentByPerson        string  `json:"payment_by_person"`
	AadhaarCardOfRecipient string  `json:"adhaar_card_no_of_reciever"`
}

// Outstanding is a member's outstanding-balance table.
type Outstanding struct {
	DeadMemberRecords []map[string]any `json:"deadMemberRecords"`
	PaymentRecords    []Payment        `json:"paymentRecords"`
	OutstandingAmount float64          `json:"outstandingAmount"`
	TotalPayment      float64          `json:"totalPayment"`
}
