package email

// Provider sends the platform's outbound mail. Delivery is treated as a
// collaborator: the recovery flow only needs to know success or failure.
type Provider interface {
	// SendResetCode delivers a one-time password recovery code.
	SendResetCode(to, name, code string) error
}

// Config holds SMTP settings.
type Config struct {
	SMTPHost    string
	SMTPPort    int
	Username    string
	Password    string
	FromEmail   string
	FromName    string
	TimeoutSecs int
}
