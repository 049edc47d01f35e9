package quiz

import "gorm.io/gorm"

// QuizContainer agrupa a cadeia repositório -> serviço -> handler da
// persistência de quizzes gerados.
type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB) *QuizContainer {
	repo := NewRepository(db)
	return &QuizContainer{
		Handler: NewHandler(NewService(db, repo)),
	}
}
