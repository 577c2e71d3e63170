package configs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DbConfigData struct {
	Id                     primitive.ObjectID `bson:"_id"`
	Title                  string             `bson:"title"`
	CorsAllowedOrigins     []string           `bson:"corsAllowedOrigins"`
	DisableSearchRecording bool               `bson:"disableSearchRecording"`
	SignupDisabled         bool               `bson:"signupDisabled"`
	TrendingCacheTtlSec    int64              `bson:"trendingCacheTtlSec"`
	PosterCacheTtlHour     int64              `bson:"posterCacheTtlHour"`
	PosterMaxWidth         int64              `bson:"posterMaxWidth"`
}

var rwm sync.RWMutex
var dbConfigs = DbConfigData{
	TrendingCacheTtlSec: 60,
	PosterCacheTtlHour:  24,
	PosterMaxWidth:      780,
}

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

// SetDbConfigs swaps the dynamic config snapshot. The loader calls it on every
// reload; tests use it to flip runtime switches.
func SetDbConfigs(data DbConfigData) {
	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = data
}

func LoadDbConfigs(mongodb *mongo.Database) {
	tick := time.NewTicker(15 * time.Minute)
	load(mongodb)
	for range tick.C {
		load(mongodb)
	}
}

func load(mongodb *mongo.Database) {
	var data DbConfigData
	err := mongodb.
		Collection("configs").
		FindOne(context.Background(), bson.D{{Key: "title", Value: "server configs"}}).
		Decode(&data)
	if err != nil {
		errorMessage := fmt.Sprintf("could not get dbConfig from mongodb: %s", err)
		if configs.PrintErrors {
			log.Println(errorMessage)
		}
		sentry.CaptureException(err)
		return
	}
	SetDbConfigs(data)
}
