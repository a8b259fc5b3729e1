package initiate_payment

import (
	"fmt"

	"github.com/boinvit/booking-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.Channel != "" &&
		req.Channel != string(domain.ChannelCard) &&
		req.Channel != string(domain.ChannelMobileMoney) {
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, req.Channel)
	}
	return nil
}
