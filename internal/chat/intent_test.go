package chat

import "testing"

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantKind   Kind
		wantSalary int64
	}{
		{
			name:       "thai keyword with amount",
			text:       "เงินเดือน 30000 ต้องเสียภาษีเท่าไหร่",
			wantKind:   KindTax,
			wantSalary: 30000,
		},
		{
			name:       "english keyword with amount",
			text:       "my salary 50000, how much tax do I owe?",
			wantKind:   KindTax,
			wantSalary: 50000,
		},
		{
			name:       "keyword adjacent to digits",
			text:       "salary25000",
			wantKind:   KindTax,
			wantSalary: 25000,
		},
		{
			name:       "case insensitive keyword",
			text:       "Salary 40000",
			wantKind:   KindTax,
			wantSalary: 40000,
		},
		{
			name:     "keyword without digits",
			text:     "how is salary taxed in general?",
			wantKind: KindGeneral,
		},
		{
			name:     "no keyword",
			text:     "what is an emergency fund?",
			wantKind: KindGeneral,
		},
		{
			name:       "first of multiple mentions wins",
			text:       "salary 10000 but next year salary 90000",
			wantKind:   KindTax,
			wantSalary: 10000,
		},
		{
			name:     "digits before keyword do not match",
			text:     "30000 is my salary",
			wantKind: KindGeneral,
		},
		{
			name:     "overflowing digits fall through",
			text:     "salary 99999999999999999999999999999",
			wantKind: KindGeneral,
		},
		{
			name:     "empty message",
			text:     "",
			wantKind: KindGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIntent(tt.text)
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Salary != tt.wantSalary {
				t.Errorf("Salary = %d, want %d", got.Salary, tt.wantSalary)
			}
		})
	}
}
