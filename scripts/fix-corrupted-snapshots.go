package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/legends-of-revenue/internal/repositories/snapshot"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted snapshots...")

	iter := client.Scan(ctx, 0, "snapshot:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int
	live := make(map[string]bool)

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var env snapshot.Envelope
		if err := json.Unmarshal([]byte(data), &env); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		id := strings.TrimPrefix(key, "snapshot:")
		if env.Character == nil || env.Character.ID != id {
			fmt.Printf("✗ Missing or mismatched character in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if env.Version != snapshot.CurrentVersion {
			fmt.Printf("! %s has version %q, expected %q\n", key, env.Version, snapshot.CurrentVersion)
		}
		live[id] = true
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Leaderboard members whose snapshot is gone or corrupted
	stale := make(map[snapshot.Metric][]string)
	for _, metric := range snapshot.Metrics {
		members, err := client.ZRange(ctx, "leaderboard:"+string(metric), 0, -1).Result()
		if err != nil {
			fmt.Printf("Error reading leaderboard %s: %v\n", metric, err)
			continue
		}
		for _, member := range members {
			if !live[member] {
				stale[metric] = append(stale[metric], member)
			}
		}
	}

	staleCount := 0
	for _, members := range stale {
		staleCount += len(members)
	}

	fmt.Printf("\nChecked %d snapshots, found %d corrupted entries and %d stale leaderboard members\n",
		checkedCount, len(corruptedKeys), staleCount)

	if len(corruptedKeys) == 0 && staleCount == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}
	for metric, members := range stale {
		fmt.Printf("Stale in leaderboard:%s: %v\n", metric, members)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		id := strings.TrimPrefix(key, "snapshot:")
		for _, metric := range snapshot.Metrics {
			client.ZRem(ctx, "leaderboard:"+string(metric), id)
		}
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for metric, members := range stale {
		for _, member := range members {
			if err := client.ZRem(ctx, "leaderboard:"+string(metric), member).Err(); err != nil {
				fmt.Printf("Failed to remove %s from %s: %v\n", member, metric, err)
			}
		}
	}
	fmt.Println("\nCleanup complete!")
}
