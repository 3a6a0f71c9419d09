package counter

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/DennisWallner/HostDesk/internal/pkg/cache"
	"github.com/DennisWallner/HostDesk/internal/pkg/database"
)

const (
	syncAttemptsKey = "controlpanel:counters:sync_attempts"
	syncErrorsKey   = "controlpanel:counters:sync_errors"
)

// AddSyncAttempt increments the pending sync attempt counter for a control panel in Redis
func AddSyncAttempt(panelID uint) error {
	ctx := context.Background()
	field := strconv.FormatUint(uint64(panelID), 10)
	return cache.GetClient().HIncrBy(ctx, syncAttemptsKey, field, 1).Err()
}

// AddSyncError increments the pending sync error counter for a control panel in Redis
func AddSyncError(panelID uint) error {
	ctx := context.Background()
	field := strconv.FormatUint(uint64(panelID), 10)
	return cache.GetClient().HIncrBy(ctx, syncErrorsKey, field, 1).Err()
}

// FlushAll flushes both attempt and error counters to the database
func FlushAll() error {
	if err := flushHashToTable(syncAttemptsKey, "control_panels", "sync_attempt_count"); err != nil {
		return err
	}
	if err := flushHashToTable(syncErrorsKey, "control_panels", "sync_error_count"); err != nil {
		return err
	}
	return nil
}

// StartFlusher periodically drains the Redis counters into the database.
// The returned stop function halts the loop.
func StartFlusher(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				_ = FlushAll()
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}

// flushHashToTable drains a Redis hash atomically and applies batched increments to the table.
// Uses RENAME to a temporary key for atomic drain without losing in-flight increments.
func flushHashToTable(redisKey, table, column string) error {
	ctx := context.Background()
	rdb := cache.GetClient()

	// Atomically move the hash to a temp key for draining
	tmpKey := fmt.Sprintf("%s:tmp:%d", redisKey, time.Now().UnixNano())
	if err := rdb.Do(ctx, "RENAME", redisKey, tmpKey).Err(); err != nil {
		// If key does not exist, nothing to flush
		if strings.Contains(strings.ToLower(err.Error()), "no such key") {
			return nil
		}
		// Some Redis libs return redis.Nil; treat as empty
		if err.Error() == "redis: nil" {
			return nil
		}
		return err
	}

	// Ensure cleanup of tmpKey even if later steps fail
	defer rdb.Del(ctx, tmpKey)

	data, err := rdb.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	// Collect ids and increments; also sort ids for stable SQL
	type pair struct {
		id  uint64
		inc int64
	}
	pairs := make([]pair, 0, len(data))
	for k, v := range data {
		id, perr := strconv.ParseUint(k, 10, 64)
		if perr != nil {
			continue
		}
		inc, ierr := strconv.ParseInt(v, 10, 64)
		if ierr != nil || inc == 0 {
			continue
		}
		pairs = append(pairs, pair{id: id, inc: inc})
	}
	if len(pairs) == 0 {
		return nil
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].id < pairs[j].id })

	// Compose SQL
	// UPDATE control_panels SET <column> = <column> + CASE id WHEN ? THEN ? ... END WHERE id IN ( ... )
	var builder strings.Builder
	args := make([]interface{}, 0, len(pairs)*3)
	builder.WriteString("UPDATE ")
	builder.WriteString(table)
	builder.WriteString(" SET ")
	builder.WriteString(column)
	builder.WriteString(" = ")
	builder.WriteString(column)
	builder.WriteString(" + CASE id ")
	for _, p := range pairs {
		builder.WriteString(" WHEN ? THEN ?")
		args = append(args, p.id, p.inc)
	}
	builder.WriteString(" END WHERE id IN (")
	for i, p := range pairs {
		if i > 0 {
			builder.WriteString(",")
		}
		builder.WriteString("?")
		args = append(args, p.id)
	}
	builder.WriteString(")")

	sql := builder.String()
	db := database.GetDB()
	if err := db.Exec(sql, args...).Error; err != nil {
		return err
	}
	return nil
}
