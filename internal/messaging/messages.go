package messaging

import "strings"

// Template keys for outbound notifications.
const (
	KeyWelcome          = "welcome"
	KeyHabitReminder    = "habit_reminder"
	KeyHabitCompleted   = "habit_completed"
	KeyAskMood          = "ask_mood"
	KeyMoodSaved        = "mood_saved"
	KeySpendingAlert    = "spending_alert"
	KeyNotificationsOn  = "notifications_on"
	KeyNotificationsOff = "notifications_off"
)

const defaultLanguage = "ru"

var catalog = map[string]map[string]string{
	"ru": {
		KeyWelcome:          "👋 Привет, {name}!\n\n🚀 Добро пожаловать в **Life Tracker** — твой персональный помощник для управления финансами, привычками и целями!",
		KeyHabitReminder:    "⏰ Напоминание!\n\nТы ещё не выполнил привычку **{habit}** сегодня.\n\nОткрой приложение и отметь выполнение! 💪",
		KeyHabitCompleted:   "🎉 Молодец!\n\nПривычка **{habit}** выполнена!\n\n🔥 Так держать! Твоя серия продолжается!",
		KeyAskMood:          "🎭 **Как прошёл твой день?**\n\nОтметь своё настроение:",
		KeyMoodSaved:        "✅ Настроение сохранено: {mood}\n\nСпасибо за отметку!",
		KeySpendingAlert:    "💸 **Аномалия расходов!**\n\nТы потратил **{amount}** сегодня, что значительно выше твоего среднего ({avg}).\n\nДержим руку на пульсе!",
		KeyNotificationsOn:  "🔔 Уведомления включены",
		KeyNotificationsOff: "🔕 Уведомления выключены",
	},
	"en": {
		KeyWelcome:          "👋 Hi, {name}!\n\n🚀 Welcome to **Life Tracker** — your personal assistant for managing finances, habits and goals!",
		KeyHabitReminder:    "⏰ Reminder!\n\nYou haven't completed **{habit}** habit today.\n\nOpen the app and mark it done! 💪",
		KeyHabitCompleted:   "🎉 Great job!\n\n**{habit}** habit completed!\n\n🔥 Keep it up! Your streak continues!",
		KeyAskMood:          "🎭 **How was your day?**\n\nRate your mood:",
		KeyMoodSaved:        "✅ Mood saved: {mood}\n\nThanks for checking in!",
		KeySpendingAlert:    "💸 **Spending Alert!**\n\nYou spent **{amount}** today, which is significantly higher than your average ({avg}).\n\nJust keeping you posted! 📉",
		KeyNotificationsOn:  "🔔 Notifications enabled",
		KeyNotificationsOff: "🔕 Notifications disabled",
	},
	"es": {
		KeyWelcome:          "👋 ¡Hola, {name}!\n\n🚀 Bienvenido a **Life Tracker** — tu asistente personal para gestionar finanzas, hábitos y metas!",
		KeyHabitReminder:    "⏰ ¡Recordatorio!\n\nNo has completado el hábito **{habit}** hoy.\n\n¡Abre la app y márcalo! 💪",
		KeyHabitCompleted:   "🎉 ¡Excelente!\n\n¡Hábito **{habit}** completado!\n\n🔥 ¡Sigue así! ¡Tu racha continúa!",
		KeyAskMood:          "🎭 **¿Qué tal tu día?**\n\nCalifica tu estado de ánimo:",
		KeyMoodSaved:        "✅ Estado de ánimo guardado: {mood}\n\n¡Gracias!",
		KeySpendingAlert:    "💸 **¡Alerta de Gasto!**\n\nHas gastado **{amount}** hoy, mucho más que tu promedio ({avg}).\n\n¡Solo para avisarte! 📉",
		KeyNotificationsOn:  "🔔 Notificaciones activadas",
		KeyNotificationsOff: "🔕 Notificaciones desactivadas",
	},
}

// Message looks up a template by language and key. Unknown languages
// fall back to ru; unknown keys fall back to the ru entry for the key.
func Message(lang, key string) string {
	msgs, ok := catalog[lang]
	if !ok {
		msgs = catalog[defaultLanguage]
	}
	if msg, ok := msgs[key]; ok {
		return msg
	}
	return catalog[defaultLanguage][key]
}

// Render substitutes {placeholder} parameters into the template for
// (lang, key).
func Render(lang, key string, params map[string]string) string {
	msg := Message(lang, key)
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}
