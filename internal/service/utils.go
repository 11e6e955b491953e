package service

import (
	"strings"

	"vetcrm/internal/utils"
)

func toTagsArray(tags string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	return strings.Split(tags, " ")
}

func joinTags(tags []string) string {
	return strings.ToLower(strings.Join(tags, " "))
}

func formatEpochPtr(millis *int64) *string {
	if millis == nil {
		return nil
	}
	s := utils.FormatEpoch(*millis)
	return &s
}
