package ai_fx

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"aura/internal/config"
	"aura/internal/repositories"
	"aura/internal/services"
	"aura/pkg/utils"
)

var Module = fx.Provide(
	provideGenerativeClient,
	provideSentimentClassifier,
	provideActivityRecommender,
	provideAIService,
	provideChatService,
)

// provideGenerativeClient builds the text model selected by AI_PROVIDER. A
// missing key degrades to a client that always fails, so every AI feature
// serves its fallback instead of blocking startup.
func provideGenerativeClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (utils.GenerativeClient, error) {
	var (
		client utils.GenerativeClient
		err    error
	)

	switch cfg.AI.Provider {
	case "openai":
		if cfg.AI.OpenAIAPIKey == "" {
			log.Warn("OPENAI_API_KEY not set, generative features will use fallbacks")
			return utils.NewUnavailableClient("OPENAI_API_KEY not set"), nil
		}
		client, err = utils.NewOpenAIClient(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
	case "genai":
		if cfg.AI.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY not set, generative features will use fallbacks")
			return utils.NewUnavailableClient("GEMINI_API_KEY not set"), nil
		}
		client, err = utils.NewGenAIClient(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	default:
		if cfg.AI.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY not set, generative features will use fallbacks")
			return utils.NewUnavailableClient("GEMINI_API_KEY not set"), nil
		}
		client, err = utils.NewGeminiClient(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	if err != nil {
		return nil, err
	}

	log.Info("generative client ready", zap.String("provider", cfg.AI.Provider))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideSentimentClassifier(cfg config.Config) utils.SentimentClassifier {
	return utils.NewHostedSentiment(utils.NewGradioClient(cfg.AI.SentimentAPIURL, &http.Client{}))
}

func provideActivityRecommender(cfg config.Config) utils.ActivityRecommender {
	return utils.NewHostedRecommender(utils.NewGradioClient(cfg.AI.RecommendationAPIURL, &http.Client{}))
}

func provideAIService(
	store services.ProfileStore,
	checkIns repositories.CheckInRepository,
	sentiment utils.SentimentClassifier,
	recommender utils.ActivityRecommender,
	gen utils.GenerativeClient,
	rt services.Runtime,
) services.AIServiceInterface {
	return services.NewAIService(store, checkIns, sentiment, recommender, gen, rt)
}

func provideChatService(gen utils.GenerativeClient, rt services.Runtime) services.ChatServiceInterface {
	return services.NewChatService(gen, rt)
}
