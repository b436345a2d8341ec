//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/sygpress/sygpress-api/internal/config"
	"github.com/sygpress/sygpress-api/internal/logger"
	"github.com/sygpress/sygpress-api/internal/server"
	"go.uber.org/zap"
)

// @title           Sygpress API
// @version         1.0
// @description     Invoice ledger and reports for a laundry back office

// @host      localhost:8000
// @BasePath  /api/v1

var ginLambda *ginadapter.GinLambda

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.InitLogger(cfg.Stage)

	srv, err := server.Bootstrap(context.Background(), cfg, logger.Log)
	if err != nil {
		logger.Fatal("Unable to start server", zap.Error(err))
	}

	ginLambda = ginadapter.New(srv.Router())
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
