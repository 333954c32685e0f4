package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/dealerhub/sales-api/pkg/wheel"
)

// TaskStatus represents the progress of a sales task
type TaskStatus int

const (
	TaskStatusTodo       TaskStatus = 0
	TaskStatusInProgress TaskStatus = 1
	TaskStatusDone       TaskStatus = 2
	TaskStatusCanceled   TaskStatus = 3
)

var TaskStatusDictionary = wheel.Dictionary{
	{Code: "Todo", Label: "Cần làm"},
	{Code: "InProgress", Label: "Đang làm"},
	{Code: "Done", Label: "Hoàn thành"},
	{Code: "Canceled", Label: "Đã hủy"},
}

func (s TaskStatus) String() string {
	names := [...]string{"Todo", "InProgress", "Done", "Canceled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Todo"
	}
	return names[s]
}

// IsValid reports whether s is a known status
func (s TaskStatus) IsValid() bool {
	return s >= TaskStatusTodo && s <= TaskStatusCanceled
}

func (s TaskStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TaskStatus(i)
		return nil
	}
	status, ok := ParseTaskStatus(str)
	if !ok {
		return fmt.Errorf("unknown task status %q", str)
	}
	*s = status
	return nil
}

// ParseTaskStatus looks a status up by name, e.g. "InProgress"
func ParseTaskStatus(name string) (TaskStatus, bool) {
	for s := TaskStatusTodo; s <= TaskStatusCanceled; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return TaskStatusTodo, false
}

func (s TaskStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TaskStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TaskStatusTodo
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TaskStatus(v)
	case int:
		*s = TaskStatus(v)
	}
	return nil
}
