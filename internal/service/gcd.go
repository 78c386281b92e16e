package service

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/InQaaaaGit/gcd_form.git/internal/gcd"
	"github.com/InQaaaaGit/gcd_form.git/internal/models"
)

// ErrZeroOperand возвращается, если хотя бы одно из чисел равно нулю.
// НОД с нулём определён, но сервис такие запросы не обрабатывает.
var ErrZeroOperand = errors.New("zero operand")

// GcdService определяет интерфейс сервиса вычисления НОД
type GcdService interface {
	Compute(ctx context.Context, req models.GcdRequest) (models.GcdResult, error)
}

// GcdServiceImpl реализует GcdService
type GcdServiceImpl struct {
	validate *validator.Validate
}

// NewGcdService создает новый экземпляр GcdService
func NewGcdService() *GcdServiceImpl {
	return &GcdServiceImpl{
		validate: validator.New(),
	}
}

// Compute проверяет запрос и вычисляет НОД.
// При нулевом аргументе возвращает ErrZeroOperand и не вызывает gcd.GCD.
func (s *GcdServiceImpl) Compute(_ context.Context, req models.GcdRequest) (models.GcdResult, error) {
	if err := s.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return models.GcdResult{}, ErrZeroOperand
		}
		return models.GcdResult{}, errors.Wrap(err, "validating gcd request")
	}

	return models.GcdResult{
		N:      req.N,
		M:      req.M,
		Result: gcd.GCD(req.N, req.M),
	}, nil
}
