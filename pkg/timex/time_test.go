package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}

	// Verify it's not returning time.Now() by waiting a bit
	// 通过等待一会确认它不是返回 time.Now()
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_JSONFormat(t *testing.T) {
	tt := Time(time.Date(2024, 6, 15, 8, 30, 0, 0, time.Local))

	data, err := json.Marshal(tt)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-06-15 08:30:00"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, "2024-06-15 08:30:00")
	}

	var back Time
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Unix() != tt.Unix() {
		t.Errorf("round trip changed the value: got %v, want %v", back.Unix(), tt.Unix())
	}
}

func TestTime_Ordering(t *testing.T) {
	earlier := Time(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	later := Time(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	if !later.After(earlier) {
		t.Error("later.After(earlier) = false, want true")
	}
	if !earlier.Before(later) {
		t.Error("earlier.Before(later) = false, want true")
	}
}
