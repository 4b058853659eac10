package models

type UserRole string
type SubscriptionTier string
type MatchStatus string
type PredictionResult string
type PaymentStatus string
type PaymentMethod string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	TierFree     SubscriptionTier = "Free"
	TierBasic    SubscriptionTier = "Basic"
	TierStandard SubscriptionTier = "Standard"
	TierPremium  SubscriptionTier = "Premium"

	MatchStatusScheduled MatchStatus = "Scheduled"
	MatchStatusLive      MatchStatus = "Live"
	MatchStatusFinished  MatchStatus = "Finished"

	ResultPending PredictionResult = "Pending"
	ResultWon     PredictionResult = "Won"
	ResultLost    PredictionResult = "Lost"
	ResultVoid    PredictionResult = "Void"

	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusApproved PaymentStatus = "Approved"
	PaymentStatusRejected PaymentStatus = "Rejected"

	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodUSDT         PaymentMethod = "USDT"
)
