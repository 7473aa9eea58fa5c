package dto

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

var registerOnce sync.Once

// RegisterValidators adds the "ticker", "eventdate" and "eventsource" tags to gin's validator.
// Safe to call repeatedly.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("ticker", validateTicker); err != nil {
			return
		}
		if err = v.RegisterValidation("eventdate", validateEventDate); err != nil {
			return
		}
		err = v.RegisterValidation("eventsource", validateEventSource)
	})
	return err
}

// validateTicker accepts any casing and surrounding space; the stored symbol is normalized later.
func validateTicker(fl validator.FieldLevel) bool {
	return domain.IsValidTicker(domain.NormalizeTicker(fl.Field().String()))
}

func validateEventDate(fl validator.FieldLevel) bool {
	return domain.IsValidEventDate(fl.Field().String())
}

func validateEventSource(fl validator.FieldLevel) bool {
	return domain.Source(fl.Field().String()).Valid()
}

// ValidationMessage turns binding errors into a single user-facing sentence.
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request body: " + err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "ticker":
		return "Invalid ticker format (use 1-5 letters, e.g., AAPL)"
	case "eventdate":
		return "Invalid date (use YYYY-MM-DD or TBD)"
	case "eventsource":
		return "Invalid source (use AlphaVantage, MarketData, manual or fallback)"
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
