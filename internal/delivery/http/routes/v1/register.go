package v1

import (
	"log"

	"freelance-desk/internal/config"
	"freelance-desk/internal/database"
	"freelance-desk/internal/delivery/http/handler"
	"freelance-desk/internal/domain/matching"
	"freelance-desk/internal/infrastructure/cache"
	"freelance-desk/internal/infrastructure/embedding"
	"freelance-desk/internal/repository"
	"freelance-desk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, logger *log.Logger) {
	if r == nil {
		return
	}

	userRepo := repository.NewPostgresUserRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	proposalRepo := repository.NewPostgresProposalRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)
	negotiationRepo := repository.NewPostgresNegotiationRepository(db)
	communicationRepo := repository.NewPostgresCommunicationRepository(db)
	documentRepo := repository.NewPostgresDocumentRepository(db)

	scorer := buildScorer(cfg.Matching)

	matchingUC := usecase.NewMatchingUsecase(userRepo, projectRepo, matchRepo, scorer)
	batchUC := usecase.NewBatchMatchUsecase(userRepo, projectRepo, matchRepo, logger)
	negotiationUC := usecase.NewNegotiationUsecase(projectRepo, proposalRepo, negotiationRepo)
	communicationUC := usecase.NewCommunicationUsecase(communicationRepo)
	documentUC := usecase.NewDocumentUsecase(documentRepo)
	dashboardUC := usecase.NewDashboardUsecase(userRepo, projectRepo, proposalRepo, cache.NewRedis(logger))

	matchHandler := handler.NewMatchHandler(matchingUC, batchUC)
	negotiationHandler := handler.NewNegotiationHandler(negotiationUC)
	communicationHandler := handler.NewCommunicationHandler(communicationUC)
	documentHandler := handler.NewDocumentHandler(documentUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC)

	RegisterMatches(r, matchHandler)
	RegisterNegotiations(r, negotiationHandler)
	RegisterCommunications(r, communicationHandler)
	RegisterDocuments(r, documentHandler)
	RegisterDashboard(r, dashboardHandler)
}

// buildScorer returns nil when the embedding scorer is selected but no API
// key is configured; the similarity endpoint then responds 503.
func buildScorer(cfg config.MatchingConfig) matching.Scorer {
	if cfg.Scorer == config.ScorerEmbedding {
		client := embedding.NewClient(cfg)
		if client == nil {
			return nil
		}
		return matching.NewEmbeddingScorer(client)
	}
	return matching.KeywordScorer{}
}
