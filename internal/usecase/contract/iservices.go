package usecasecontract

import "context"

// IAppLogger is the application-wide structured logger.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IValidator checks request-level input rules that binding tags cannot.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}

// IAIService calls the generative model with a prompt and returns raw text.
type IAIService interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// IScraper fetches a web page and extracts its readable text.
type IScraper interface {
	ScrapeText(ctx context.Context, link string) (string, error)
}
