package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
)

const (
	toonPrefix    = "toon:"
	appliedPrefix = "applied:"
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

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted toon data...")

	var badKeys []string
	var checkedCount int

	iter := client.Scan(ctx, 0, toonPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var t toon.Toon
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}

		if problem := checkToon(key, &t); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			badKeys = append(badKeys, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Marks for a toon that no longer exists would make a recreated toon
	// skip items it never received
	iter = client.Scan(ctx, 0, appliedPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		avatarID := strings.TrimPrefix(key, appliedPrefix)
		exists, err := client.Exists(ctx, toonPrefix+avatarID).Result()
		if err != nil {
			fmt.Printf("Error checking %s: %v\n", key, err)
			continue
		}
		if exists == 0 {
			fmt.Printf("✗ Orphaned applied marks in %s\n", key)
			badKeys = append(badKeys, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d bad entries\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nBad keys:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range badKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// checkToon reports the first broken invariant, or "" when the toon is sound
func checkToon(key string, t *toon.Toon) string {
	switch {
	case toonPrefix+t.ID != key:
		return fmt.Sprintf("stored id %q does not match key", t.ID)
	case t.MaxHP < 1:
		return fmt.Sprintf("max laff is %d", t.MaxHP)
	case t.HP > t.MaxHP:
		return fmt.Sprintf("laff %d exceeds max %d", t.HP, t.MaxHP)
	case t.Money > t.MaxMoney:
		return fmt.Sprintf("jellybeans %d exceed jar size %d", t.Money, t.MaxMoney)
	}
	for track, level := range t.TrackAccess {
		if level < 0 || level > toon.MaxTrackAccess {
			return fmt.Sprintf("track %d has access level %d", track, level)
		}
	}
	return ""
}
