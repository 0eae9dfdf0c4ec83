package morph

import "testing"

func TestGenitive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "masculine -ov with initials", input: "Иванов И.И.", want: "Иванова И.И."},
		{name: "masculine -ev", input: "Лебедев А.", want: "Лебедева А."},
		{name: "masculine -in", input: "Путин В.В.", want: "Путина В.В."},
		{name: "masculine -shin falls through to consonant rule", input: "Шишкин М.", want: "Шишкина М."},
		{name: "feminine -ova", input: "Петрова А.", want: "Петровой А."},
		{name: "feminine -eva", input: "Байсеитова У.", want: "Байсеитовой У."},
		{name: "feminine -ina", input: "Никитина О.", want: "Никитиной О."},
		{name: "feminine -aya", input: "Толстая С.", want: "Толстой С."},
		{name: "feminine generic -a", input: "Сорока Л.", want: "Сорокой Л."},
		{name: "feminine -ya", input: "Берия Л.П.", want: "Берии Л.П."},
		{name: "masculine -skiy", input: "Невский А.", want: "Невского А."},
		{name: "masculine -tskiy", input: "Трубецкий П.", want: "Трубецкого П."},
		{name: "masculine -oy", input: "Толстой Л.Н.", want: "Толстого Л.Н."},
		{name: "masculine -yy", input: "Белый А.", want: "Белого А."},
		{name: "soft sign", input: "Куколь В.", want: "Куколя В."},
		{name: "trailing consonant", input: "Мельник Т.", want: "Мельника Т."},
		{name: "foreign -a still inflects", input: "Дюма А.", want: "Дюмой А."},
		{name: "no rule matches", input: "Живаго Ю.", want: "Живаго Ю."},
		{name: "surname only", input: "Иванов", want: "Иванова"},
		{name: "extra spacing collapses", input: "  Иванов   И. И. ", want: "Иванова И. И."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Genitive(tc.input); got != tc.want {
				t.Fatalf("Genitive(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestGenitiveRuleOrder(t *testing.T) {
	t.Parallel()

	// -ова must win over the generic -а rule, and -ая over the generic -я
	// rule; both pairs would produce different endings if reordered.
	if got := genitiveSurname("Петрова"); got != "Петровой" {
		t.Fatalf("genitiveSurname(Петрова) = %q, want Петровой", got)
	}
	if got := genitiveSurname("Толстая"); got != "Толстой" {
		t.Fatalf("genitiveSurname(Толстая) = %q, want Толстой", got)
	}
}
