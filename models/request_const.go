package models

import "github.com/pkg/errors"

type RequestType string

const (
	RequestTypeLeave     RequestType = "Leave"
	RequestTypeEquipment RequestType = "Equipment"
	RequestTypeOvertime  RequestType = "Overtime"
)

var requestTypeHumanName = map[RequestType]string{
	RequestTypeLeave:     "Отпуск",
	RequestTypeEquipment: "Оборудование",
	RequestTypeOvertime:  "Сверхурочные",
}

func (t RequestType) Validate() error {
	if _, exist := requestTypeHumanName[t]; !exist {
		return errors.Errorf("недопустимый тип заявки: %v", string(t))
	}
	return nil
}

func (t RequestType) ToHuman() string {
	if human, exist := requestTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

type RequestUrgency string

const (
	RequestUrgencyLow    RequestUrgency = "Low"
	RequestUrgencyMedium RequestUrgency = "Medium"
	RequestUrgencyHigh   RequestUrgency = "High"
)

var requestUrgencyHumanName = map[RequestUrgency]string{
	RequestUrgencyLow:    "Низкая",
	RequestUrgencyMedium: "Средняя",
	RequestUrgencyHigh:   "Высокая",
}

func (u RequestUrgency) Validate() error {
	if _, exist := requestUrgencyHumanName[u]; !exist {
		return errors.Errorf("недопустимая срочность заявки: %v", string(u))
	}
	return nil
}

func (u RequestUrgency) ToHuman() string {
	if human, exist := requestUrgencyHumanName[u]; exist {
		return human
	}
	return string(u)
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusPending:  "На рассмотрении",
	RequestStatusApproved: "Согласована",
	RequestStatusRejected: "Отклонена",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal - из статусов approved/rejected переходы запрещены
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// IsAllowChange - переход допустим только pending -> approved/rejected
func (s RequestStatus) IsAllowChange(newStatus RequestStatus) bool {
	if s != RequestStatusPending {
		return false
	}
	return newStatus.IsTerminal()
}
