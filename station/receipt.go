package station

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/juju/errors"
	qrcode "github.com/skip2/go-qrcode"
)

const DefaultQRSize = 256

// Receipt is immutable proof of bought parking time.
type Receipt struct {
	value  Minutes
	id     string
	issued time.Time
}

func newReceipt(value Minutes) Receipt {
	return Receipt{
		value:  value,
		id:     uuid.New().String(),
		issued: time.Now(),
	}
}

func (r Receipt) Value() Minutes    { return r.value }
func (r Receipt) ID() string        { return r.id }
func (r Receipt) Issued() time.Time { return r.issued }
func (r Receipt) String() string    { return fmt.Sprintf("id=%s minutes=%d", r.id, r.value) }
func (r Receipt) Payload() string {
	return fmt.Sprintf("paystation:receipt id=%s minutes=%d issued=%d", r.id, r.value, r.issued.Unix())
}

// QRCode renders Payload as PNG image size x size pixels.
func (r Receipt) QRCode(size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(r.Payload(), qrcode.Medium, size)
	if err != nil {
		return nil, errors.Annotatef(err, "receipt qrcode id=%s", r.id)
	}
	return png, nil
}
