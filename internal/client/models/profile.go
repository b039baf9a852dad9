package models

type Profile struct {
	ID            string  `json:"_id"`
	UserID        string  `json:"userId"`
	NativePlace   string  `json:"native_place"`
	MaritalStatus string  `json:"marital_status"`
	Gotra         string  `json:"gotra"`
	EntranceFee   float64 `json:"entrance_fee"`
	CorpusFund    float64 `json:"corpus_fund"`
	Deposit       float64 `json:"deposit"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
	Version       int     `json:"__v"`
}

type ProfileCreate struct {
	UserID        string  `json:"userId"`
	NativePlace   string  `json:"native_place"`
	MaritalStatus string  `json:"marital_status"`
	Gotra         string  `json:"gotra"`
	EntranceFee   float64 `json:"entrance_fee"`
	CorpusFund    float64 `json:"corpus_fund"`
	Deposit       float64 `json:"deposit"`
}

type ProfileUpdate struct {
	NativePlace   string  `json:"native_place"`
	MaritalStatus string  `json:"marital_status"`
	Gotra         string  `json:"gotra"`
	EntranceFee   float64 `json:"entrance_fee"`
	CorpusFund    float64 `json:"corpus_fund"`
	Deposit       float64 `json:"deposit"`
}
