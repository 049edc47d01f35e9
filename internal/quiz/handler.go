package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/Feghellere/memoreasy/internal/auth"
	"github.com/Feghellere/memoreasy/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para criar quiz")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Quiz      Quiz            `json:"quiz"`
		Questions []*QuizQuestion `json:"questions"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(payload.Questions) == 0 {
		log.Warn("Tentativa de criar quiz sem perguntas")
		http.Error(w, "quiz must contain at least one question", http.StatusBadRequest)
		return
	}

	payload.Quiz.UserID = uuid.MustParse(claims.UserID)

	if payload.Quiz.ID == uuid.Nil {
		payload.Quiz.ID = uuid.New()
	}

	if payload.Quiz.Title == "" {
		log.Warn("Título inválido ou ausente")
		http.Error(w, "invalid title", http.StatusBadRequest)
		return
	}

	for _, q := range payload.Questions {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		q.QuizID = payload.Quiz.ID
	}

	if err := h.service.CreateQuizWithQuestions(r.Context(), &payload.Quiz, payload.Questions); err != nil {
		log.WithError(err).Error("Erro ao criar quiz com perguntas")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"quiz":      payload.Quiz,
		"questions": payload.Questions,
	})
}

func (h *Handler) SaveResponses(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para salvar respostas")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		log.Warn("ID do quiz não fornecido")
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	var payload struct {
		Responses []*UserResponse `json:"responses"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para salvar respostas")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(payload.Responses) == 0 {
		log.Warn("Tentativa de salvar respostas vazias")
		http.Error(w, "responses required", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	parsedQuizID, err := uuid.Parse(quizID)
	if err != nil {
		log.Warn("ID do quiz inválido")
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	for _, resp := range payload.Responses {
		if resp.ID == uuid.Nil {
			resp.ID = uuid.New()
		}
		resp.UserID = userID
		resp.QuizID = parsedQuizID
	}

	if err := h.service.SaveResponses(r.Context(), payload.Responses); err != nil {
		log.WithError(err).Error("Erro ao salvar respostas do quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]string{
		"message": "responses saved successfully",
	})
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		log.Warn("ID do quiz não fornecido")
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), quizID); err != nil {
		log.WithError(err).Error("Erro ao deletar quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) GetQuizWithQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		log.Warn("ID do quiz não fornecido")
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	quizWithQuestions, err := h.service.GetQuizWithQuestions(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar quiz com perguntas")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if quizWithQuestions == nil {
		http.Error(w, "quiz not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, quizWithQuestions)
}

func (h *Handler) ListQuizzesByUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para listar quizzes")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizzes, err := h.service.ListQuizzesByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar quizzes do usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}
