package backend

import (
	"context"
	"net/url"

	"hotel-portal/internal/usecase/readmodel"
)

const pdfContentType = "application/pdf"

func document(name string, resp *response) readmodel.DocumentRM {
	ct := resp.contentType
	if ct == "" {
		ct = pdfContentType
	}
	return readmodel.DocumentRM{Name: name, ContentType: ct, Content: resp.body}
}

// BookingDocument fetches a stored booking PDF on behalf of staff.
func (c *Client) BookingDocument(ctx context.Context, bookingID int64, docType string) (readmodel.DocumentRM, error) {
	resp, err := c.getRaw(ctx, "document.booking", "/documents/"+formatID(bookingID)+"/pdfs/"+url.PathEscape(docType))
	if err != nil {
		return readmodel.DocumentRM{}, err
	}
	return document(docType, resp), nil
}

// Passport fetches the passport scan uploaded at check-in.
func (c *Client) Passport(ctx context.Context, bookingID int64, email string) (readmodel.DocumentRM, error) {
	resp, err := c.getRaw(ctx, "document.passport", "/documents/passport/"+formatID(bookingID)+"/"+url.PathEscape(email))
	if err != nil {
		return readmodel.DocumentRM{}, err
	}
	return document("passport-"+formatID(bookingID)+".pdf", resp), nil
}
