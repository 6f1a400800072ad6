// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"fmt"
	"strconv"

	. "github.com/GetSky/NaturalTime/internal/application"
	"github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var dayTemplate = `☀️ *Day started*

Natural date: *%s*
Sunrise: *%05.1f°*  Sunset: *%05.1f°*
Golden hours: %05.1f° → %05.1f°
`

var nightTemplate = `🌙 *Night started*

Natural date: *%s*
Night: *%05.1f°* → *%05.1f°*
`

var summaryTemplate = `🕰 *%s*

Sun: rise %05.1f°, set %05.1f°
Night: %05.1f° → %05.1f°
Moon: rise %s, set %s, culmination %s at %.1f°
`

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifyService struct {
	bot           sender
	telegramChat  int64
	lastSummaryID int
	lastSummary   string
}

func NewTelegramNotifyService(botToken string, receiverKey string) (NotifyService, error) {
	chat, err := parseChat(receiverKey)
	if err != nil {
		return nil, err
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("TelegramNotifyService → failed to initialize bot: %v", err)
	}

	return &telegramNotifyService{
		bot:          bot,
		telegramChat: chat,
	}, nil
}

func newTelegramNotifyService(bot sender, receiverKey string) (*telegramNotifyService, error) {
	chat, err := parseChat(receiverKey)
	if err != nil {
		return nil, err
	}

	return &telegramNotifyService{
		bot:          bot,
		telegramChat: chat,
	}, nil
}

func parseChat(receiverKey string) (int64, error) {
	chat, err := strconv.ParseInt(receiverKey, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("TelegramNotifyService → failed to parse receiverKey: %v", err)
	}
	return chat, nil
}

func (c *telegramNotifyService) SendDayStarted(date NaturalDate, sun SunEvents) error {
	text := fmt.Sprintf(dayTemplate, date.String(), sun.Sunrise, sun.Sunset, sun.MorningGoldenHour, sun.EveningGoldenHour)
	return c.sendNew(text)
}

func (c *telegramNotifyService) SendNightStarted(date NaturalDate, sun SunEvents) error {
	text := fmt.Sprintf(nightTemplate, date.String(), sun.NightStart, sun.NightEnd)
	return c.sendNew(text)
}

// SendSummary edits the previous summary while the natural day is unchanged,
// and posts a new one on the next day.
func (c *telegramNotifyService) SendSummary(date NaturalDate, sun SunEvents, moon MoonEvents) error {
	text := fmt.Sprintf(summaryTemplate,
		date.String(),
		sun.Sunrise, sun.Sunset,
		sun.NightStart, sun.NightEnd,
		moon.Moonrise, moon.Moonset, moon.Culmination, moon.HighestAltitude,
	)

	var cnf tgbotapi.Chattable
	if c.lastSummaryID == 0 || c.lastSummary != date.DayIdentity() {
		cnf = tgbotapi.MessageConfig{
			BaseChat:  tgbotapi.BaseChat{ChatID: c.telegramChat},
			Text:      text,
			ParseMode: tgbotapi.ModeMarkdown,
		}
	} else {
		cnf = tgbotapi.EditMessageTextConfig{
			BaseEdit: tgbotapi.BaseEdit{
				ChatID:    c.telegramChat,
				MessageID: c.lastSummaryID,
			},
			Text:      text,
			ParseMode: tgbotapi.ModeMarkdown,
		}
	}

	msg, err := c.bot.Send(cnf)
	if err != nil {
		return fmt.Errorf("TelegramNotifyService → %v", err)
	}
	if msg.MessageID != 0 {
		c.lastSummaryID = msg.MessageID
	}
	c.lastSummary = date.DayIdentity()

	return nil
}

func (c *telegramNotifyService) sendNew(text string) error {
	_, err := c.bot.Send(tgbotapi.MessageConfig{
		BaseChat: tgbotapi.BaseChat{
			ChatID: c.telegramChat,
		},
		Text:      text,
		ParseMode: tgbotapi.ModeMarkdown,
	})
	if err != nil {
		return fmt.Errorf("TelegramNotifyService → %v", err)
	}

	c.lastSummaryID = 0
	c.lastSummary = ""

	return nil
}
