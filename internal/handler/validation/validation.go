// Package validation registers the custom binding rules used by request DTOs.
package validation

import (
	"sync"

	"preloved-market/internal/domain/qrcode"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the rules on gin's default validator. Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("qrcode", validQRCode); err != nil {
		return errors.Wrap(err, "register qrcode rule")
	}
	if err := v.RegisterValidation("qrprefix", validQRPrefix); err != nil {
		return errors.Wrap(err, "register qrprefix rule")
	}
	return nil
}

func validQRCode(fl validator.FieldLevel) bool {
	return qrcode.ValidFormat(fl.Field().String())
}

// the prefix is upper-cased on the way in, so only the normalized form is checked
func validQRPrefix(fl validator.FieldLevel) bool {
	_, err := qrcode.NormalizePrefix(fl.Field().String())
	return err == nil
}
