package app

import (
	"context"
	"log"
	"time"

	"mindhaven/internal/config"
	"mindhaven/internal/handler"
	"mindhaven/internal/repository"
	"mindhaven/internal/service"
)

func Run(cfg *config.Config) {
	db, err := repository.NewDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}

	gateway := repository.NewMongoGateway(db)

	cache := repository.NewNoopMemberCountCache()
	if cfg.RedisAddr != "" {
		rdb, err := repository.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		cache = repository.NewMemberCountCache(rdb)
	}

	roomRepo := repository.NewRoomRepository(gateway)
	memberRepo := repository.NewMembershipRepository(gateway)
	messageRepo := repository.NewMessageRepository(gateway)
	userRepo := repository.NewUserRepository(gateway)

	membershipService := service.NewMembershipService(roomRepo, memberRepo, cache)
	roomService := service.NewRoomService(roomRepo, memberRepo, cache)
	conversationService := service.NewConversationService(roomRepo, memberRepo, messageRepo, userRepo, membershipService)
	userService := service.NewUserService(userRepo, messageRepo)

	roomHandler := handler.NewRoomHandler(roomService, membershipService, conversationService)
	userHandler := handler.NewUserHandler(userService)
	wellnessHandler := handler.NewWellnessHandler()

	server := NewServer(userHandler, roomHandler, wellnessHandler)
	server.Run(cfg.ServerPort)
}
