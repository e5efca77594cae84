package usecasecontract

import "context"

// IAIUseCase turns a source article into a blog draft.
type IAIUseCase interface {
	GenerateBlogDraft(ctx context.Context, link, prompt string) (*GeneratedBlog, error)
}

// GeneratedBlog is a model-produced draft ready for editing.
type GeneratedBlog struct {
	Title   string
	Content string
	Tags    []string
}
