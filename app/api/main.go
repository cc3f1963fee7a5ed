package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/auctionx/goapi/base/ctx"
	"github.com/auctionx/goapi/base/database/mongoclient"
	"github.com/auctionx/goapi/base/database/redisclient"
	"github.com/auctionx/goapi/base/log"
	"github.com/auctionx/goapi/base/metrics"
	bValidator "github.com/auctionx/goapi/base/validator"
	"github.com/auctionx/goapi/base/wei"
	"github.com/auctionx/goapi/domain"
	mmiddleware "github.com/auctionx/goapi/middleware"
	"github.com/auctionx/goapi/service/chain"
	"github.com/auctionx/goapi/service/query"
	"github.com/auctionx/goapi/service/redis"
	auction_delivery "github.com/auctionx/goapi/stores/auction/delivery/http"
	auction_repository "github.com/auctionx/goapi/stores/auction/repository"
	auction_usecase "github.com/auctionx/goapi/stores/auction/usecase"
	hc_delivery "github.com/auctionx/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/auctionx/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/auctionx/goapi/stores/healthcheck/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	// init chain services
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[domain.ChainId]string)
	for k := range keys {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		CallTimeout: viper.GetDuration("chain.callTimeout"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	sender, err := chain.NewSender(context, &chain.SenderCfg{
		RpcUrls:        rpcs,
		PrivateKey:     viper.GetString("signer.privateKey"),
		CallTimeout:    viper.GetDuration("chain.callTimeout"),
		ReceiptTimeout: viper.GetDuration("chain.receiptTimeout"),
	})
	if err != nil {
		context.WithField("err", err).Warn("sender started with error")
	}
	if !sender.Configured() {
		context.Warn("no signing key configured, deployments and bid forwarding disabled")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	artifactRepo := auction_repository.NewFsArtifactRepo(viper.GetString("contracts.artifactDir"))

	hc := hc_usecase.New(hcRepo)
	reader := auction_usecase.NewStateReader(chainService)
	validatorCfg := &auction_usecase.ValidatorCfg{}
	if s := viper.GetString("validation.minIncrement"); s != "" {
		minIncrement, err := wei.Parse(s)
		if err != nil {
			context.WithField("err", err).Panic("bad validation.minIncrement")
		}
		validatorCfg.MinIncrement = minIncrement
	}
	auctionValidator := auction_usecase.NewValidator(reader, validatorCfg)
	deployer := auction_usecase.NewDeployer(sender, artifactRepo)
	forwarder := auction_usecase.NewForwarder(sender)
	auction := auction_usecase.NewAuctionUsecase(deployer, reader, auctionValidator, forwarder, auctionRepo)

	hc_delivery.New(e, hc)
	auction_delivery.New(e, auction)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
