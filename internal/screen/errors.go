package screen

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/spacex"
)

const genericErrorMessage = "Something went wrong"

// ErrorMessage turns a refresh failure into text for the user.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The SpaceX API took too long to respond"
	}
	if errors.Is(err, context.Canceled) {
		return "Request cancelled"
	}

	var apiErr *spacex.Error
	if !errors.As(err, &apiErr) {
		return genericErrorMessage
	}
	switch apiErr.Kind {
	case spacex.KindTransport:
		return "Unable to reach the SpaceX API. Check your connection"
	case spacex.KindHTTPStatus:
		switch {
		case apiErr.Status == http.StatusNotFound:
			return "Not found on the SpaceX API"
		case apiErr.Status == http.StatusTooManyRequests:
			return "Rate limited by the SpaceX API. Try again shortly"
		case apiErr.Status >= 500:
			return fmt.Sprintf("The SpaceX API is unavailable (HTTP %d)", apiErr.Status)
		default:
			return fmt.Sprintf("The SpaceX API rejected the request (HTTP %d)", apiErr.Status)
		}
	case spacex.KindDecode:
		return "Unexpected response from the SpaceX API"
	default:
		return genericErrorMessage
	}
}
