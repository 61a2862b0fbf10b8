package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// Boundary defaults applied when a request omits a field.
const (
	DefaultLength = 16
	DefaultCount  = 5
)

// GeneratorService handles password generation and validation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a single password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length, opts := resolveOptions(req)

	password, err := crypto.Generate(length, opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Success:  true,
		Password: password,
		Length:   length,
		Options:  echoOptions(opts),
	}, nil
}

// GenerateBatch produces count independent passwords. A failed generation
// aborts the whole batch.
func (s *GeneratorService) GenerateBatch(req model.BatchRequest) (model.BatchResponse, error) {
	length, opts := resolveOptions(req.GenerateRequest)
	count := model.IntOrDefault(req.Count, DefaultCount)

	passwords, err := crypto.GenerateMany(count, length, opts)
	if err != nil {
		return model.BatchResponse{}, err
	}

	return model.BatchResponse{
		Success:   true,
		Count:     len(passwords),
		Passwords: passwords,
		Length:    length,
		Options:   echoOptions(opts),
	}, nil
}

// Validate scores a password against the requested requirements. It never
// fails; weaknesses surface through the report itself.
func (s *GeneratorService) Validate(password string, req *model.RequirementsRequest) model.ValidateResult {
	reqs := crypto.DefaultRequirements()
	if req != nil {
		reqs.MinLength = model.IntOrDefault(req.MinLength, reqs.MinLength)
		reqs.MaxLength = model.IntOrDefault(req.MaxLength, reqs.MaxLength)
		reqs.RequireUppercase = req.RequireUppercase.Or(false)
		reqs.RequireLowercase = req.RequireLowercase.Or(false)
		reqs.RequireNumbers = req.RequireNumbers.Or(false)
		reqs.RequireSymbols = req.RequireSymbols.Or(false)
	}

	report := crypto.Validate(password, reqs)

	checks := make(map[string]model.CheckResult, len(report.Checks))
	for _, c := range report.Checks {
		checks[c.Name] = model.CheckResult{Passed: c.Passed, Message: c.Message}
	}

	return model.ValidateResult{
		Valid:    report.Valid,
		Score:    report.Score,
		Strength: report.Strength,
		Checks:   checks,
	}
}

// resolveOptions applies the boundary defaults: 16 characters, all categories
// enabled, nothing excluded, no per-category guarantee.
func resolveOptions(req model.GenerateRequest) (int, crypto.GenerateOptions) {
	opts := crypto.GenerateOptions{
		Uppercase:        req.IncludeUppercase.Or(true),
		Lowercase:        req.IncludeLowercase.Or(true),
		Numbers:          req.IncludeNumbers.Or(true),
		Symbols:          req.IncludeSymbols.Or(true),
		Exclude:          req.Exclude,
		ExcludeAmbiguous: req.ExcludeAmbiguous.Or(false),
		RequireEach:      req.RequireEach.Or(false),
	}
	return model.IntOrDefault(req.Length, DefaultLength), opts
}

func echoOptions(opts crypto.GenerateOptions) model.Options {
	return model.Options{
		IncludeUppercase: opts.Uppercase,
		IncludeLowercase: opts.Lowercase,
		IncludeNumbers:   opts.Numbers,
		IncludeSymbols:   opts.Symbols,
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
		Exclude:          opts.Exclude,
		RequireEach:      opts.RequireEach,
	}
}
