package sealgate

import "context"

// SimpleClient talks to the gateway in basic mode. It holds only
// immutable credentials after construction and may be shared read-only
// across goroutines.
type SimpleClient struct {
	lookups
}

// Send sends a plain text message to the recipient. The gateway
// encrypts it for delivery but can read the content itself; use an
// E2EClient when that is not acceptable. Returns the message ID.
//
// Cost: 1 credit.
func (c *SimpleClient) Send(ctx context.Context, to Recipient, text string) (string, error) {
	msgID, err := c.api.SendSimple(ctx, to, text)
	if err != nil {
		return "", wrapError(err)
	}
	return msgID, nil
}
