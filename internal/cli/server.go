package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trivia-duel-service/internal/app"
	"trivia-duel-service/internal/config"
	"trivia-duel-service/internal/domain"
	"trivia-duel-service/internal/infra/memory"
	pgstore "trivia-duel-service/internal/infra/postgres"
	redisinfra "trivia-duel-service/internal/infra/redis"
	"trivia-duel-service/internal/infra/report"
	transport "trivia-duel-service/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trivia duel server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader redisinfra.PoolLoader
	var bank app.QuestionBank
	if pool != nil {
		pgBank := pgstore.NewQuestionBank(pool)
		loader, bank = pgBank, pgBank
	} else {
		memBank := memory.NewQuestionBank(sampleQuestions())
		loader, bank = memBank, memBank
	}

	questionTTL := config.TTLDuration(cfg.Questions.TTL, 10*time.Minute)
	if redisClient != nil {
		bank = redisinfra.NewQuestionCache(redisClient, loader, questionTTL)
	}

	var store app.MatchStore
	if pool != nil {
		store = pgstore.NewMatchStore(pool)
	} else {
		store = memory.NewMatchStore()
	}

	var directory app.MatchDirectory
	if redisClient != nil {
		directory = redisinfra.NewMatchDirectory(redisClient, redisTTL)
	} else {
		directory = memory.NewMatchDirectory()
	}

	gameCfg := app.GameConfig{
		Rounds:                cfg.Game.Rounds,
		QuestionsPerRound:     cfg.Game.QuestionsPerRound,
		QuestionWindow:        config.Seconds(cfg.Game.QuestionSeconds, 30*time.Second),
		SecondResponderWindow: config.Seconds(cfg.Game.SecondResponderSecond, 5*time.Second),
		QueueTimeout:          config.Seconds(cfg.Game.QueueTimeoutSeconds, 60*time.Second),
	}

	service := app.NewGameService(gameCfg, app.NewClock(), store, bank, report.NewReporter(cfg.Report.URL), directory)
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting trivia duel service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleQuestions provides a minimal demo bank; production deployments load
// questions from Postgres instead.
func sampleQuestions() map[string][]domain.Question {
	return map[string][]domain.Question{
		"topic-1": {
			{
				ID:   1,
				Text: "What is 2 + 2?",
				Options: []domain.Option{
					{ID: 0, Text: "3"},
					{ID: 1, Text: "4"},
					{ID: 2, Text: "5"},
				},
				CorrectIndex: 1,
			},
			{
				ID:   2,
				Text: "Which planet is known as the red planet?",
				Options: []domain.Option{
					{ID: 0, Text: "Venus"},
					{ID: 1, Text: "Jupiter"},
					{ID: 2, Text: "Mars"},
				},
				CorrectIndex: 2,
			},
			{
				ID:   3,
				Text: "What is the capital of France?",
				Options: []domain.Option{
					{ID: 0, Text: "Paris"},
					{ID: 1, Text: "Lyon"},
					{ID: 2, Text: "Marseille"},
				},
				CorrectIndex: 0,
			},
			{
				ID:   4,
				Text: "How many sides does a hexagon have?",
				Options: []domain.Option{
					{ID: 0, Text: "5"},
					{ID: 1, Text: "6"},
					{ID: 2, Text: "7"},
				},
				CorrectIndex: 1,
			},
			{
				ID:   5,
				Text: "What is the chemical symbol for gold?",
				Options: []domain.Option{
					{ID: 0, Text: "Ag"},
					{ID: 1, Text: "Go"},
					{ID: 2, Text: "Au"},
				},
				CorrectIndex: 2,
			},
			{
				ID:   6,
				Text: "Which ocean is the largest?",
				Options: []domain.Option{
					{ID: 0, Text: "Atlantic"},
					{ID: 1, Text: "Pacific"},
					{ID: 2, Text: "Indian"},
				},
				CorrectIndex: 1,
			},
		},
	}
}
