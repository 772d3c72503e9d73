package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
)

var validate = validator.New()

// MaxCount is the largest number of passwords one request may ask for. It
// matches the count validation on model.GenerateRequest.
const MaxCount = 20

// Defaults are applied to request fields the caller left unset.
type Defaults struct {
	Length  int
	Letters bool
	Numbers bool
	Symbols bool
}

// StandardDefaults mirrors the widget's initial state: 12 characters with
// letters and numbers enabled.
func StandardDefaults() Defaults {
	return Defaults{
		Length:  generator.DefaultLength,
		Letters: true,
		Numbers: true,
	}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen      *generator.Generator
	defaults Defaults
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *generator.Generator, defaults Defaults) *GeneratorService {
	if defaults.Length == 0 {
		defaults.Length = generator.DefaultLength
	}
	return &GeneratorService{gen: gen, defaults: defaults}
}

// Generate produces one or more passwords based on the given request.
// The only error returned is a validator.ValidationErrors for a bad count.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := validate.Struct(req); err != nil {
		return model.GenerateResponse{}, err
	}

	length := req.Length
	if length == 0 {
		length = s.defaults.Length
	}
	length = generator.ClampLength(length)

	classes := generator.ClassSetFromFlags(
		boolOrDefault(req.Letters, s.defaults.Letters),
		boolOrDefault(req.Numbers, s.defaults.Numbers),
		boolOrDefault(req.Symbols, s.defaults.Symbols),
	)

	count := req.Count
	if count == 0 {
		count = 1
	}

	passwords := make([]model.PasswordResult, count)
	for i := range passwords {
		password := s.gen.Synthesize(length, classes)
		result := model.PasswordResult{Password: password}
		if generator.IsPassword(password) {
			result.Copyable = true
			result.Strength = strengthResponse(generator.Evaluate(password))
		} else {
			result.Strength = strengthResponse(generator.Evaluate(""))
		}
		passwords[i] = result
	}

	return model.GenerateResponse{
		Length:    length,
		Classes:   classes.Names(),
		Passwords: passwords,
	}, nil
}

// Strength evaluates an arbitrary password.
func (s *GeneratorService) Strength(req model.StrengthRequest) (model.StrengthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return model.StrengthResponse{}, err
	}
	return strengthResponse(generator.Evaluate(req.Password)), nil
}

func strengthResponse(a generator.Assessment) model.StrengthResponse {
	return model.StrengthResponse{
		Score: a.Score,
		Label: a.Label.String(),
		Color: a.Label.ColorToken(),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
