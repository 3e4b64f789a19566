// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// humanizeServerUnavailableError переводит транспортные ошибки загрузки в
// понятное пользователю сообщение; остальные ошибки показываются как есть.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"dial tcp",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"context deadline exceeded",
	} {
		if strings.Contains(s, marker) {
			return "Отсутствует сеть или Сервер недоступен"
		}
	}

	return err.Error()
}
