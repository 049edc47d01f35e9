package container

import (
	"context"
	"log"
	"os"

	"github.com/Feghellere/memoreasy/internal/aiquiz"
	"github.com/Feghellere/memoreasy/internal/auth"
	"github.com/Feghellere/memoreasy/internal/config"
	"github.com/Feghellere/memoreasy/internal/quiz"
)

type Container struct {
	AIQuizContainer *aiquiz.AIQuizContainer
	QuizContainer   *quiz.QuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx)
	quizContainer := quiz.NewQuizContainer(config.DB)

	return &Container{
		AIQuizContainer: aiQuizContainer,
		QuizContainer:   quizContainer,
	}
}
