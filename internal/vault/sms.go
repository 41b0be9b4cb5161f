package vault

import (
	"context"
	"net/http"
)

// SMSRequest describes one outbound text alert. The store resolves the
// destination from the recipient's user attribute so the phone number never
// has to pass through this application.
type SMSRequest struct {
	ProviderAccountSID string
	ProviderKeySID     string
	ProviderKeySecret  string
	FromNumber         string
	ToUserID           string
	ToUserAttribute    string
	Body               string
}

// SendSMS asks the store's messaging bridge to deliver a text alert.
// At-most-once; callers own the decision to swallow failures.
func (c *Client) SendSMS(ctx context.Context, req SMSRequest) error {
	body := map[string]any{
		"provider": "TWILIO",
		"auth": map[string]string{
			"account_sid": req.ProviderAccountSID,
			"key_sid":     req.ProviderKeySID,
			"key_secret":  req.ProviderKeySecret,
		},
		"from_number": map[string]string{"literal_value": req.FromNumber},
		"to_number": map[string]string{
			"user_attribute": req.ToUserAttribute,
			"user_id":        req.ToUserID,
		},
		"message_body": req.Body,
	}
	return c.do(ctx, http.MethodPost, "/v1/message/sms", body, nil, false)
}
