package notification

type SendRequest struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
}
