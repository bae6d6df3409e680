package mail

type LeadEmailData struct {
	Name  string
	Email string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}
