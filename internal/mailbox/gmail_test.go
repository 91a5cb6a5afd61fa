package mailbox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	gmail "google.golang.org/api/gmail/v1"
)

func TestHeaderDomain(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{name: "plain address", from: "statements@rblbank.com", want: "rblbank.com"},
		{name: "display name", from: "RBL Bank <Statements@RBLBank.com>", want: "rblbank.com"},
		{name: "subdomain", from: "alerts <noreply@alerts.axisbank.com>", want: "alerts.axisbank.com"},
		{name: "unparseable falls back to raw", from: "RBL Bank; <statements@rblbank.com>", want: "rblbank.com"},
		{name: "no address", from: "not an address", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := &gmail.MessagePart{
				Headers: []*gmail.MessagePartHeader{
					{Name: "Subject", Value: "Your statement"},
					{Name: "From", Value: tt.from},
				},
			}
			assert.Equal(t, tt.want, headerDomain(payload))
		})
	}
}

func TestHeaderDomainMissing(t *testing.T) {
	assert.Equal(t, "", headerDomain(nil))
	assert.Equal(t, "", headerDomain(&gmail.MessagePart{}))
}

func TestFlattenPartsWalksNestedMultiparts(t *testing.T) {
	payload := &gmail.MessagePart{
		MimeType: "multipart/mixed",
		Parts: []*gmail.MessagePart{
			{MimeType: "multipart/alternative", Parts: []*gmail.MessagePart{
				{MimeType: "text/plain"},
				{MimeType: "text/html"},
			}},
			{MimeType: "application/pdf", Filename: "statement.pdf"},
		},
	}

	parts := flattenParts(payload)
	assert.Len(t, parts, 5)

	var filenames []string
	for _, p := range parts {
		if p.Filename != "" {
			filenames = append(filenames, p.Filename)
		}
	}
	assert.Equal(t, []string{"statement.pdf"}, filenames)
}

func TestFlattenPartsNil(t *testing.T) {
	assert.Nil(t, flattenParts(nil))
}

func TestDecodeAttachment(t *testing.T) {
	payload := []byte("%PDF-1.4 attachment bytes")

	padded := base64.URLEncoding.EncodeToString(payload)
	raw, err := decodeAttachment(padded)
	assert.NoError(t, err)
	assert.Equal(t, payload, raw)

	unpadded := base64.RawURLEncoding.EncodeToString(payload)
	raw, err = decodeAttachment(unpadded)
	assert.NoError(t, err)
	assert.Equal(t, payload, raw)

	_, err = decodeAttachment("!!! not base64 !!!")
	assert.Error(t, err)
}
