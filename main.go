package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"marvin/internal/adapters/access"
	"marvin/internal/adapters/generator"
	"marvin/internal/adapters/handler"
	"marvin/internal/adapters/sender"
	"marvin/internal/core/domain"
	"marvin/internal/core/domain/command"
	"marvin/internal/core/domain/commands"
	"marvin/internal/core/port"
	"marvin/internal/core/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	log.Info().Msg("starting marvin...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")
	viper.AutomaticEnv()

	viper.SetDefault("telegram.message_limit", 4096)
	viper.SetDefault("telegram.rate_per_chat", 1.0)
	viper.SetDefault("telegram.rate_burst", 5)
	viper.SetDefault("dispatch.wait_ttl", "5m")
	viper.SetDefault("dispatch.repeat_command", "/again")
	viper.SetDefault("handler.timeout", "2m")
	viper.SetDefault("chat.model", "openai/gpt-4.1")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	setupLogging()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	token := viper.GetString("telegram.bot_token")

	levels, err := access.NewLevels()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid access configuration")
	}

	waitTTL, err := time.ParseDuration(viper.GetString("dispatch.wait_ttl"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid wait TTL in config")
	}

	waits := service.NewPendingWaits(waitTTL)
	last := service.NewLastCommands()

	orGenerator := generator.NewOpenRouter(
		viper.GetString("openrouter.api_key"),
		viper.GetString("chat.model"),
		viper.GetString("chat.system_prompt"))

	falGenerator := generator.NewFAL(
		viper.GetString("fal.flux_url"),
		viper.GetString("fal.api_key"))

	registry := command.NewRegistry()
	registerCommands(registry, levels, waits, orGenerator, falGenerator)

	dispatcher := service.NewDispatcher(service.DispatcherParams{
		Registry:    registry,
		Levels:      levels,
		Waits:       waits,
		Last:        last,
		TextLimit:   viper.GetInt("telegram.message_limit"),
		RepeatToken: viper.GetString("dispatch.repeat_command"),
	})

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timeout for handler in config")
	}

	var inbound *handler.Inbound

	opts := []bot.Option{
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			inbound.Handle(ctx, b, update)
		}),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	limiter := service.NewChatLimiter(
		viper.GetFloat64("telegram.rate_per_chat"),
		viper.GetInt("telegram.rate_burst"))

	inbound = handler.NewInbound(dispatcher, sender.NewTelegram(b), limiter, handlerTimeout)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}

func setupLogging() {
	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if logFile := viper.GetString("bot.log_file"); logFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		console := zerolog.ConsoleWriter{Out: os.Stderr}
		log.Logger = log.Output(zerolog.MultiLevelWriter(console, rotated))
	}
}

func registerCommands(registry *command.Registry, levels *access.Levels,
	waits *service.PendingWaits, orGenerator *generator.OpenRouter, falGenerator *generator.FAL) {
	descriptors := []struct {
		descriptor command.Descriptor
		handler    port.Handler
	}{
		{
			descriptor: command.Descriptor{
				Name:      "/help",
				Aliases:   []string{"/start"},
				HandlerID: commands.HelpID,
				MinLevel:  domain.Guest,
				Help:      "list available commands",
			},
			handler: commands.NewHelp(registry, levels),
		},
		{
			descriptor: command.Descriptor{
				Name:      "/ask",
				Aliases:   []string{"/a"},
				HandlerID: commands.AskID,
				MinLevel:  domain.User,
				Help:      "ask the model a question",
			},
			handler: commands.NewAsk(orGenerator, waits),
		},
		{
			descriptor: command.Descriptor{
				Name:      "/image",
				Aliases:   []string{"/img"},
				HandlerID: commands.ImageID,
				MinLevel:  domain.User,
				Help:      "generate a picture from a prompt",
			},
			handler: commands.NewImage(falGenerator, waits),
		},
		{
			descriptor: command.Descriptor{
				Name:      "/roll",
				HandlerID: commands.RollID,
				MinLevel:  domain.Guest,
				Help:      "throw dice, e.g. /roll 2d20",
			},
			handler: commands.NewRoll(),
		},
		{
			descriptor: command.Descriptor{
				Name:      "/place",
				HandlerID: commands.PlaceID,
				MinLevel:  domain.User,
				Help:      "send a location pin for <lat>,<lon>",
			},
			handler: commands.NewPlace(),
		},
		{
			descriptor: command.Descriptor{
				Name:      "/purge",
				HandlerID: commands.PurgeID,
				MinLevel:  domain.Admin,
				Help:      "remove the replied-to message",
			},
			handler: commands.NewPurge(),
		},
	}

	for _, entry := range descriptors {
		if err := registry.Register(entry.descriptor, entry.handler); err != nil {
			log.Fatal().Err(err).Msg("invalid command registration")
		}
	}
}
