package services

import (
	"encoding/json"
	"log"

	redis "github.com/KanapuramVaishnavi/Core/config/redis"

	"github.com/gin-gonic/gin"
)

/*
* Cached values live as maps,decode them into the typed model through a
* JSON round trip. Any read or decode problem counts as a miss and the
* caller falls back to the database
 */
func fetchCached(c *gin.Context, key string, dest interface{}) bool {
	cached := make(map[string]interface{})
	exists, err := redis.GetCache(c, key, &cached)
	if err != nil {
		log.Println("Error from GetCache: ", err)
		return false
	}
	if !exists {
		return false
	}
	if err := decodeCached(cached, dest); err != nil {
		log.Println("Error decoding cached value: ", err)
		return false
	}
	return true
}

func decodeCached(cached map[string]interface{}, dest interface{}) error {
	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
