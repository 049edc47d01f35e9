package quiz

import (
	"context"

	"github.com/Feghellere/memoreasy/internal/config"
	"gorm.io/gorm"
)

type QuizService interface {
	CreateQuizWithQuestions(ctx context.Context, quiz *Quiz, questions []*QuizQuestion) error
	SaveResponses(ctx context.Context, responses []*UserResponse) error
	DeleteQuiz(ctx context.Context, quizID string) error
	GetQuizWithQuestions(ctx context.Context, quizID string) (*QuizWithQuestionsDTO, error)
	ListQuizzesByUser(ctx context.Context, userID string) ([]*Quiz, error)
}

type quizService struct {
	repo QuizRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo QuizRepository) QuizService {
	return &quizService{
		repo: repo,
		db:   db,
	}
}

func (s *quizService) CreateQuizWithQuestions(ctx context.Context, quiz *Quiz, questions []*QuizQuestion) error {
	log := config.WithContext(ctx)
	log.Info("Criando novo quiz...")

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			log.Errorf("Erro ao criar quiz: %v", err)
			return err
		}

		for i := range questions {
			questions[i].QuizID = quiz.ID
			questions[i].OrderIndex = i
		}

		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				log.Errorf("Erro ao criar perguntas do quiz: %v", err)
				return err
			}
		}

		log.WithField("quiz_id", quiz.ID.String()).Info("Quiz criado com sucesso")
		return nil
	})
}

func (s *quizService) SaveResponses(ctx context.Context, responses []*UserResponse) error {
	log := config.WithContext(ctx)
	log.Infof("Salvando %d respostas do quiz...", len(responses))

	if err := s.repo.AddResponses(responses); err != nil {
		log.Errorf("Erro ao salvar respostas: %v", err)
		return err
	}

	log.Info("Respostas salvas com sucesso")
	return nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) error {
	log := config.WithContext(ctx)
	log.Info("Deletando quiz...")

	if err := s.repo.Delete(quizID); err != nil {
		log.Errorf("Erro ao deletar quiz: %v", err)
		return err
	}

	log.Info("Quiz deletado com sucesso")
	return nil
}

func (s *quizService) GetQuizWithQuestions(ctx context.Context, quizID string) (*QuizWithQuestionsDTO, error) {
	log := config.WithContext(ctx)
	log.WithField("quiz_id", quizID).Info("Buscando quiz com perguntas...")

	quiz, err := s.repo.GetByID(quizID)
	if err != nil {
		log.Errorf("Erro ao buscar quiz: %v", err)
		return nil, err
	}
	if quiz == nil {
		return nil, nil
	}

	questions, err := s.repo.ListQuestionsByQuiz(quizID)
	if err != nil {
		log.Errorf("Erro ao listar perguntas do quiz: %v", err)
		return nil, err
	}

	return &QuizWithQuestionsDTO{
		Quiz:      quiz,
		Questions: questions,
	}, nil
}

func (s *quizService) ListQuizzesByUser(ctx context.Context, userID string) ([]*Quiz, error) {
	log := config.WithContext(ctx)
	log.WithField("user_id", userID).Info("Listando quizzes do usuário...")

	quizzes, err := s.repo.ListQuizzesByUser(userID)
	if err != nil {
		log.Errorf("Erro ao listar quizzes do usuário: %v", err)
		return nil, err
	}

	return quizzes, nil
}
