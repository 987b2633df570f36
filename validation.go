package tracelog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validatorInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateConfig(cfg *ServiceConfig) error {
	if cfg == nil {
		return errors.New(errMsgNilConfig)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return fmt.Errorf("%s: %w", errMsgConfigInvalid, err)
	}
	return nil
}

// validateSpec checks the declarative shape of a contract before the
// compiler looks at templates and parameters: names present, at least one
// operation, every operation named and templated.
func validateSpec(spec *ContractSpec) error {
	if spec == nil {
		return errors.New(errMsgNilSpec)
	}
	return validatorInstance().Struct(spec)
}
