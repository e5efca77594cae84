package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	usecasecontract "counselconnect/internal/usecase/contract"
)

type AIUseCase struct {
	aiService usecasecontract.IAIService
	scraper   usecasecontract.IScraper
}

// check if AIUseCase implement IAIUseCase
var _ usecasecontract.IAIUseCase = (*AIUseCase)(nil)

func NewAIUseCase(aiServ usecasecontract.IAIService, scraper usecasecontract.IScraper) *AIUseCase {
	return &AIUseCase{
		aiService: aiServ,
		scraper:   scraper,
	}
}

const maxSourceChars = 12000

var (
	titleTagRe   = regexp.MustCompile(`(?s)<title>(.*?)</title>`)
	contentTagRe = regexp.MustCompile(`(?s)<content>(.*?)</content>`)
	tagsTagRe    = regexp.MustCompile(`(?s)<tags>(.*?)</tags>`)
)

// GenerateBlogDraft scrapes the linked article and asks the model to
// rewrite it as an original draft. The model is told to answer in a
// fixed tagged format so the pieces can be pulled apart reliably.
func (uc *AIUseCase) GenerateBlogDraft(ctx context.Context, link, prompt string) (*usecasecontract.GeneratedBlog, error) {
	if strings.TrimSpace(link) == "" {
		return nil, fmt.Errorf("failed to generate draft: empty link provided")
	}

	source, err := uc.scraper.ScrapeText(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("failed to read source article: %w", err)
	}
	if len(source) > maxSourceChars {
		source = source[:maxSourceChars]
	}

	instructions := strings.TrimSpace(prompt)
	if instructions == "" {
		instructions = "Write for an audience of students and counsellors."
	}

	fullPrompt := fmt.Sprintf(
		`You are a blog writer. Using the source article below, write an original blog post of at least 300 words. %s
Respond in exactly this format:
<title>the blog title</title>
<content>the blog body</content>
<tags>comma,separated,tags</tags>

Source article:
%s`,
		instructions,
		source,
	)

	// call the ai service to generate content
	raw, err := uc.aiService.GenerateContent(ctx, fullPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	draft := parseGeneratedBlog(raw)
	if draft.Title == "" || draft.Content == "" {
		return nil, fmt.Errorf("failed to generate content: model response missing title or content")
	}
	return draft, nil
}

// parseGeneratedBlog extracts the tagged sections from a model reply.
// A reply without tags falls back to treating the whole text as content.
func parseGeneratedBlog(raw string) *usecasecontract.GeneratedBlog {
	draft := &usecasecontract.GeneratedBlog{}
	if m := titleTagRe.FindStringSubmatch(raw); len(m) == 2 {
		draft.Title = strings.TrimSpace(m[1])
	}
	if m := contentTagRe.FindStringSubmatch(raw); len(m) == 2 {
		draft.Content = strings.TrimSpace(m[1])
	}
	if m := tagsTagRe.FindStringSubmatch(raw); len(m) == 2 {
		for _, t := range strings.Split(m[1], ",") {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				draft.Tags = append(draft.Tags, t)
			}
		}
	}
	if draft.Title == "" && draft.Content == "" {
		lines := strings.SplitN(strings.TrimSpace(raw), "\n", 2)
		if len(lines) == 2 {
			draft.Title = strings.TrimSpace(strings.TrimPrefix(lines[0], "#"))
			draft.Content = strings.TrimSpace(lines[1])
		}
	}
	return draft
}
