package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/Feghellere/memoreasy/internal/container"
	"github.com/Feghellere/memoreasy/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	handler := router.New(router.RouterConfig{
		AIQuizHandler: c.AIQuizContainer.Handler,
		QuizHandler:   c.QuizContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler.(*chi.Mux))
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("porta", port).Info("Servidor HTTP iniciado")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("falha ao iniciar servidor: %v", err)
	}
}
