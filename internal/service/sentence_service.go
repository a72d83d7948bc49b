//go:generate mockery --name SentenceService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"linguaquest/internal/config"
	"linguaquest/internal/middleware"
	"linguaquest/internal/model"
	"linguaquest/internal/repository"

	"github.com/sashabaranov/go-openai"
	"gorm.io/gorm"
)

type SentenceService interface {
	GenerateClozeSentence(ctx context.Context, lang model.Language) (*model.GeneratedSentence, error)
}

type sentenceService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	client    *openai.Client
	model     string
}

func NewSentenceService(db *gorm.DB, vocabRepo repository.VocabularyRepository, cfg *config.Config) SentenceService {
	clientConfig := openai.DefaultConfig(cfg.AI.APIKey)
	if cfg.AI.BaseURL != "" {
		clientConfig.BaseURL = cfg.AI.BaseURL
	}
	return &sentenceService{
		db:        db,
		vocabRepo: vocabRepo,
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.AI.Model,
	}
}

// 応答の書式はプロンプトで固定し、正規表現で取り出す。
// モデルが引用符を省いたり前後に説明文を足しても拾えるように緩めにしてある。
var (
	sourceLineRe  = regexp.MustCompile(`(?mi)^\s*Sentence:\s*"?([^"\n]+?)"?\s*$`)
	amharicLineRe = regexp.MustCompile(`(?mi)^\s*Amharic:\s*"?([^"\n]+?)"?\s*$`)
	blankLineRe   = regexp.MustCompile(`(?mi)^\s*BlankWord:\s*"?([^"\n]+?)"?\s*$`)
)

// parseClozeResponse はAIの応答テキストを GeneratedSentence に変換します。
// 3行すべてが取れない応答は不正として扱う。
func parseClozeResponse(content string) (*model.GeneratedSentence, error) {
	source := sourceLineRe.FindStringSubmatch(content)
	amharic := amharicLineRe.FindStringSubmatch(content)
	blank := blankLineRe.FindStringSubmatch(content)
	if source == nil || amharic == nil || blank == nil {
		return nil, fmt.Errorf("parseClozeResponse: unexpected response format: %q", content)
	}

	sentence := &model.GeneratedSentence{
		Source:  strings.TrimSpace(source[1]),
		Amharic: strings.TrimSpace(amharic[1]),
		Blank:   strings.TrimSpace(blank[1]),
	}
	if !strings.Contains(sentence.Amharic, "____") {
		return nil, fmt.Errorf("parseClozeResponse: amharic sentence has no blank placeholder: %q", sentence.Amharic)
	}
	return sentence, nil
}

func buildClozePrompt(lang model.Language, amharicTerm, term string) string {
	name := lang.DisplayName()
	return fmt.Sprintf(`Create a short, simple sentence for a beginner learning Amharic.
The sentence must use the Amharic word "%s" (which means "%s" in %s).
Then replace that word in the Amharic sentence with "____".

Respond with exactly three lines and nothing else:
Sentence: "<the full sentence in %s>"
Amharic: "<the Amharic sentence with ____ in place of the word>"
BlankWord: "%s"`, amharicTerm, term, name, name, term)
}

// GenerateClozeSentence はカタログからランダムに選んだ語で穴埋め例文を生成します
func (s *sentenceService) GenerateClozeSentence(ctx context.Context, lang model.Language) (*model.GeneratedSentence, error) {
	logger := middleware.GetLogger(ctx).With("lang", lang.String())

	item, err := s.vocabRepo.FindRandomWithTerm(ctx, s.db, lang)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "この言語の語彙が登録されていません。", "lang", model.ErrNotFound)
		}
		logger.Error("Failed to pick a random vocabulary item", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の取得に失敗しました。", "", model.ErrInternalServer)
	}

	term, ok := item.TermIn(lang)
	if !ok {
		logger.Error("Random vocabulary item has no term for language", "word_id", item.WordID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙データに不整合があります。", "", model.ErrInternalServer)
	}

	reqCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   200,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildClozePrompt(lang, item.AmharicTerm, term),
			},
		},
	})
	if err != nil {
		logger.Error("AI sentence generation request failed",
			"error", err,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return nil, model.NewAppError("AI_UNAVAILABLE", "例文の生成に失敗しました。しばらくしてから再度お試しください。", "", model.ErrInternalServer)
	}
	if len(resp.Choices) == 0 {
		logger.Error("AI sentence generation returned no choices")
		return nil, model.NewAppError("AI_UNAVAILABLE", "例文の生成に失敗しました。しばらくしてから再度お試しください。", "", model.ErrInternalServer)
	}

	sentence, err := parseClozeResponse(resp.Choices[0].Message.Content)
	if err != nil {
		logger.Warn("Failed to parse AI response", "error", err)
		return nil, model.NewAppError("AI_UNAVAILABLE", "例文の生成に失敗しました。しばらくしてから再度お試しください。", "", model.ErrInternalServer)
	}

	logger.Info("Cloze sentence generated",
		"word_id", item.WordID,
		"latency_ms", time.Since(start).Milliseconds(),
		"tokens", resp.Usage.TotalTokens,
	)
	return sentence, nil
}
