package handlers

const (
	txtStart = "Привет! Я бот-переводчик.\n\n" +
		"Пришлите текст — переведу. Пришлите голосовое — распознаю, " +
		"переведу и озвучу. Пришлите фото с текстом — прочитаю и переведу.\n\n" +
		"/settings — языки, голос и скорость озвучки."

	txtHelp = "Команды:\n" +
		"/start — приветствие и текущие настройки\n" +
		"/settings — меню настроек\n" +
		"/help — эта справка\n\n" +
		"Текст, голосовые и фото с текстом перевожу автоматически."

	txtSettingsMenu   = "Меню настроек"
	txtSaveFailed     = "Не получилось сохранить настройку, попробуйте ещё раз."
	txtBadSpeed       = "Скорость должна быть положительным числом, например 1.25."
	txtNoSpeech       = "Не удалось распознать речь. Говорите чётче или отправьте текст."
	txtNoImageText    = "Текст на картинке не найден."
	txtVoiceFailed    = "Не получилось обработать голосовое сообщение."
	txtPickLanguage   = "Выберите язык перевода:"
	txtPickSource     = "Выберите исходный язык:"
	txtPickAudio      = "Выберите язык озвучки:"
	txtPickVoice      = "Выберите тип голоса:"
	txtPickSpeed      = "Выберите скорость озвучки:"

	menuLanguage = "Язык перевода"
	menuSource   = "Исходный язык"
	menuAudio    = "Язык озвучки"
	menuVoice    = "Тип голоса"
	menuSpeed    = "Скорость"
)
