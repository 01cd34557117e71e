package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ListData wraps list endpoints' payloads.
type ListData struct {
	List          interface{} `json:"list"`
	LimitExceeded bool        `json:"limitExceeded"`
}

// EntryData wraps single-entry endpoints' payloads.
type EntryData struct {
	Entry interface{} `json:"entry"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds,
// which is what the response envelope carries.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

// NewOKResponse creates a successful response envelope around data.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// NewListResponse creates a successful response envelope around a list payload.
func NewListResponse(list interface{}) ResponseModel {
	return NewOKResponse(ListData{List: list, LimitExceeded: false})
}

// NewEntryResponse creates a successful response envelope around a single entry.
func NewEntryResponse(entry interface{}) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry})
}
