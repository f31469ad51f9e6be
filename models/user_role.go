package models

type UserRole string

const (
	UserRoleRequester UserRole = "Requester"
	UserRoleApprover  UserRole = "Approver"
)

var roleHumanName = map[UserRole]string{
	UserRoleRequester: "Сотрудник",
	UserRoleApprover:  "Согласующий",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsApprover() bool {
	return r == UserRoleApprover
}

const SystemUser = "Система"
