package requestapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"request-mesh/models"
)

func validData() RequestCreateData {
	return RequestCreateData{
		Title:         "Новый ноутбук",
		Description:   "Старый не включается",
		RequestType:   models.RequestTypeEquipment,
		Urgency:       models.RequestUrgencyHigh,
		Email:         "user@example.com",
		SuperiorEmail: "boss@example.com",
	}
}

func TestRequestCreateDataValidate(t *testing.T) {
	t.Run("корректная заявка проходит проверку", func(t *testing.T) {
		require.NoError(t, validData().Validate())
	})

	t.Run("обязательные поля", func(t *testing.T) {
		data := validData()
		data.Title = ""
		require.Error(t, data.Validate())

		data = validData()
		data.Email = ""
		require.Error(t, data.Validate())

		data = validData()
		data.SuperiorEmail = ""
		require.Error(t, data.Validate())
	})

	t.Run("тип и срочность только из справочника", func(t *testing.T) {
		data := validData()
		data.RequestType = "Hardware"
		require.Error(t, data.Validate())

		data = validData()
		data.Urgency = "ASAP"
		require.Error(t, data.Validate())
	})

	t.Run("описание не обязательно", func(t *testing.T) {
		data := validData()
		data.Description = ""
		require.NoError(t, data.Validate())
	})
}

func TestRequestDecideDataValidate(t *testing.T) {
	require.Error(t, RequestDecideData{}.Validate())
	require.NoError(t, RequestDecideData{RequestID: "rec-1"}.Validate())
}
