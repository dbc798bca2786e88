package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mavita-score/internal/common/amqp"
	"mavita-score/internal/common/database"
	"mavita-score/internal/common/logger"
	"mavita-score/internal/common/mqtt"
	commonredis "mavita-score/internal/common/redis"
	"mavita-score/internal/config"
	httpapi "mavita-score/internal/http"
	"mavita-score/internal/pipeline"
	"mavita-score/internal/repository"
	"mavita-score/internal/service"
	"mavita-score/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "mavita-score")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Redis：指标缓存 + 评估事件 Stream；不可用时两者都关闭
	redisClient := commonredis.NewRedisClient(&cfg.Redis)
	var kv store.KV
	publisher := service.NewMultiPublisher(log.Named("events"))
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := commonredis.Ping(pingCtx, redisClient); err != nil {
		log.Warn("Redis unavailable, cache and stream events disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	} else {
		kv = store.NewRedisKV(redisClient)
		publisher.Add("redis-stream", service.NewRedisStreamPublisher(redisClient, cfg.Score.Stream, cfg.Score.StreamMaxLen))
	}
	pingCancel()
	cache := service.NewIndicatorCache(kv, cfg.Score.CachePrefix, cfg.Score.CacheTTL, log.Named("cache"))

	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		if c, err := mqtt.NewClient(&cfg.MQTT.MQTTConfig, log.Named("mqtt")); err == nil {
			mqttClient = c
			publisher.Add("mqtt", service.NewMQTTPublisher(c, cfg.MQTT.Topic))
		} else {
			log.Warn("MQTT enabled but connection failed", zap.Error(err))
		}
	}

	var amqpPublisher *amqp.Publisher
	if cfg.AMQP.Enabled {
		if p, err := amqp.NewPublisher(&cfg.AMQP.AMQPConfig, log.Named("amqp")); err == nil {
			amqpPublisher = p
			publisher.Add("amqp", service.NewAMQPPublisher(p))
		} else {
			log.Warn("AMQP enabled but connection failed", zap.Error(err))
		}
	}

	// 数据库：关闭或连接失败时只提供无状态评估接口
	var (
		db        *sql.DB
		profiles  repository.ProfilesRepository
		healths   repository.HealthsRepository
		summaries repository.ScoreSummariesRepository
	)
	if cfg.Database.Enabled {
		if d, err := database.NewPostgresDB(&cfg.Database.DatabaseConfig); err == nil {
			db = d
			profiles = repository.NewPostgresProfilesRepository(db)
			healths = repository.NewPostgresHealthsRepository(db)
			summaries = repository.NewPostgresScoreSummariesRepository(db)
			log.Info("DB enabled for mavita-score")
		} else {
			log.Warn("DB enabled but connection failed, stored scores disabled", zap.Error(err))
		}
	}

	p := pipeline.New(time.Now, log)
	scores := service.NewScoreService(service.ScoreServiceDeps{
		Pipeline:  p,
		Profiles:  profiles,
		Healths:   healths,
		Summaries: summaries,
		Cache:     cache,
		Publisher: publisher,
		Logger:    log.Named("score"),
	})
	handler := httpapi.NewScoreHandler(
		service.NewProfileService(profiles, cache, time.Now, log.Named("profile")),
		service.NewHealthService(healths, cache, log.Named("health")),
		scores,
		cfg.HTTP.MaxBodyBytes,
		log,
	)

	router := httpapi.NewRouter(log)
	router.RegisterHealthRoute()
	router.RegisterScoreRoutes(handler)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("HTTP server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	_ = redisClient.Close()
	if mqttClient != nil {
		mqttClient.Disconnect()
	}
	if amqpPublisher != nil {
		_ = amqpPublisher.Close()
	}
	if db != nil {
		_ = database.Close(db)
	}
}
