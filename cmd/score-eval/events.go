package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"mavita-score/internal/common/config"
	commonredis "mavita-score/internal/common/redis"
	"mavita-score/internal/service"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
)

type eventsOptions struct {
	stream   string
	group    string
	consumer string
	count    int64
	block    time.Duration
	follow   bool
}

func newEventsCmd() *cobra.Command {
	var (
		opts      eventsOptions
		redisAddr string
		redisDB   int
	)
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail score events from the Redis stream",
		Long: `Reads ScoreEvent messages from the score event stream through a consumer
group, prints one line per event and acknowledges it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client := commonredis.NewRedisClient(&config.RedisConfig{Addr: redisAddr, DB: redisDB})
			defer client.Close()
			return tailEvents(ctx, client, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&redisAddr, "redis-addr", envOr("REDIS_ADDR", "localhost:6379"), "Redis address")
	cmd.Flags().IntVar(&redisDB, "redis-db", 0, "Redis database")
	cmd.Flags().StringVar(&opts.stream, "stream", envOr("SCORE_STREAM", "mavita:score:events"), "Stream name")
	cmd.Flags().StringVar(&opts.group, "group", "score-eval", "Consumer group")
	cmd.Flags().StringVar(&opts.consumer, "consumer", "cli", "Consumer name")
	cmd.Flags().Int64Var(&opts.count, "count", 10, "Messages per read")
	cmd.Flags().DurationVar(&opts.block, "block", 5*time.Second, "Block time per read when following")
	cmd.Flags().BoolVarP(&opts.follow, "follow", "f", false, "Keep reading until interrupted")
	return cmd
}

// tailEvents 读取并确认消息；不 follow 时读空即返回
func tailEvents(ctx context.Context, client redis.Cmdable, opts eventsOptions, out io.Writer) error {
	if err := commonredis.CreateConsumerGroup(ctx, client, opts.stream, opts.group); err != nil {
		return err
	}
	block := time.Duration(-1)
	if opts.follow {
		block = opts.block
	}
	for {
		msgs, err := commonredis.ReadFromStream(ctx, client, opts.stream, opts.group, opts.consumer, opts.count, block)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read stream %s: %w", opts.stream, err)
		}
		for _, msg := range msgs {
			var event service.ScoreEvent
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				fmt.Fprintf(out, "%s\tundecodable event: %v\n", msg.ID, err)
			} else {
				fmt.Fprintf(out, "%s\t%s\t%s\ttotal=%d\tindicators=%d\n",
					msg.ID, event.EvaluatedAt.Format(time.RFC3339), event.UserUUID,
					event.Summary.Total(), len(event.Indicators))
			}
			if err := commonredis.Ack(ctx, client, opts.stream, opts.group, msg.ID); err != nil {
				return fmt.Errorf("failed to ack %s: %w", msg.ID, err)
			}
		}
		if len(msgs) == 0 && !opts.follow {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
