package catalog

func init() {
	b = buildBank(seedSubjects, seedUnits, seedTopics, seedItems, seedTracks, seedInsights)
}

var seedSubjects = []Subject{
	{Key: "matematica", Name: "Matemática", Icon: "📐"},
	{Key: "fisica", Name: "Física", Icon: "🧲"},
	{Key: "quimica", Name: "Química", Icon: "⚗️"},
}

var seedUnits = []Unit{
	{
		ID:          "mat-fracoes",
		SubjectKey:  "matematica",
		Title:       "Frações",
		Description: "Equivalência, comparação e operações com frações.",
		Grades:      GradeRange{Min: 5, Max: 8},
	},
	{
		ID:            "mat-equacoes-1grau",
		SubjectKey:    "matematica",
		Title:         "Equações do 1º grau",
		Description:   "Resolução de equações lineares com uma incógnita.",
		Grades:        GradeRange{Min: 7, Max: 9},
		Prerequisites: []string{"mat-fracoes"},
	},
	{
		ID:          "mat-geometria-plana",
		SubjectKey:  "matematica",
		Title:       "Geometria Plana",
		Description: "Áreas, perímetros e ângulos de figuras planas.",
		Grades:      GradeRange{Min: 6, Max: 9},
	},
	{
		ID:            "mat-funcoes",
		SubjectKey:    "matematica",
		Title:         "Funções",
		Description:   "Função afim e quadrática: gráficos, raízes e vértice.",
		Grades:        GradeRange{Min: 9, Max: 12},
		Prerequisites: []string{"mat-equacoes-1grau"},
	},
	{
		ID:          "fis-cinematica",
		SubjectKey:  "fisica",
		Title:       "Cinemática",
		Description: "Movimento uniforme e uniformemente variado.",
		Grades:      GradeRange{Min: 9, Max: 12},
	},
	{
		ID:            "fis-dinamica",
		SubjectKey:    "fisica",
		Title:         "Dinâmica",
		Description:   "Leis de Newton e aplicações de forças.",
		Grades:        GradeRange{Min: 10, Max: 12},
		Prerequisites: []string{"fis-cinematica"},
	},
	{
		ID:          "qui-estrutura-atomica",
		SubjectKey:  "quimica",
		Title:       "Estrutura Atômica",
		Description: "Modelos atômicos, número atômico e distribuição eletrônica.",
		Grades:      GradeRange{Min: 9, Max: 12},
	},
	{
		ID:            "qui-estequiometria",
		SubjectKey:    "quimica",
		Title:         "Estequiometria",
		Description:   "Balanceamento e cálculos com quantidades de matéria.",
		Grades:        GradeRange{Min: 10, Max: 12},
		Prerequisites: []string{"qui-estrutura-atomica"},
	},
}

var seedTopics = []Topic{
	{ID: "top-frac-equivalencia", UnitID: "mat-fracoes", Title: "Frações equivalentes", Description: "Reconhecer e gerar frações equivalentes."},
	{ID: "top-frac-operacoes", UnitID: "mat-fracoes", Title: "Operações com frações", Description: "Somar, subtrair, multiplicar e dividir frações."},
	{ID: "top-eq-isolamento", UnitID: "mat-equacoes-1grau", Title: "Isolar a incógnita", Description: "Operações inversas para isolar x."},
	{ID: "top-eq-problemas", UnitID: "mat-equacoes-1grau", Title: "Problemas com equações", Description: "Traduzir enunciados em equações."},
	{ID: "top-geo-areas", UnitID: "mat-geometria-plana", Title: "Áreas de figuras planas", Description: "Área de triângulos, retângulos e círculos."},
	{ID: "top-geo-angulos", UnitID: "mat-geometria-plana", Title: "Ângulos", Description: "Soma dos ângulos internos e ângulos complementares."},
	{ID: "top-fun-afim", UnitID: "mat-funcoes", Title: "Função afim", Description: "Coeficientes, gráfico e raiz da função afim."},
	{ID: "top-fun-quadratica", UnitID: "mat-funcoes", Title: "Função quadrática", Description: "Raízes, vértice e concavidade."},
	{ID: "top-cin-mu", UnitID: "fis-cinematica", Title: "Movimento uniforme", Description: "Velocidade média e função horária do MU."},
	{ID: "top-cin-muv", UnitID: "fis-cinematica", Title: "Movimento uniformemente variado", Description: "Aceleração e equação de Torricelli."},
	{ID: "top-din-leis", UnitID: "fis-dinamica", Title: "Leis de Newton", Description: "Inércia, F = m·a e ação e reação."},
	{ID: "top-atm-modelos", UnitID: "qui-estrutura-atomica", Title: "Modelos atômicos", Description: "De Dalton a Bohr."},
	{ID: "top-atm-distribuicao", UnitID: "qui-estrutura-atomica", Title: "Distribuição eletrônica", Description: "Diagrama de Linus Pauling."},
	{ID: "top-est-balanceamento", UnitID: "qui-estequiometria", Title: "Balanceamento", Description: "Conservação de massa em reações."},
	{ID: "top-est-mol", UnitID: "qui-estequiometria", Title: "Quantidade de matéria", Description: "Mol, massa molar e proporções."},
}

var seedItems = []ItemTemplate{
	// Frações
	{
		ID: "item-frac-1", UnitID: "mat-fracoes", TopicID: "top-frac-equivalencia",
		Kind: KindTrueFalse, Mode: ModeN1, Difficulty: 1,
		Prompt:        "A fração 2/4 é equivalente a 1/2.",
		CorrectAnswer: "verdadeiro",
		Explanation:   "Dividindo numerador e denominador de 2/4 por 2, obtemos 1/2.",
		ErrorKind:     ErrorConcept,
	},
	{
		ID: "item-frac-2", UnitID: "mat-fracoes", TopicID: "top-frac-operacoes",
		Kind: KindMultipleChoice, Mode: ModeN1, Difficulty: 2,
		Prompt:        "Quanto é 1/3 + 1/6?",
		Options:       []string{"1/2", "2/9", "1/9", "2/6"},
		CorrectAnswer: "1/2",
		Explanation:   "Com denominador comum 6: 2/6 + 1/6 = 3/6 = 1/2.",
		ErrorKind:     ErrorCalculation,
	},
	{
		ID: "item-frac-3", UnitID: "mat-fracoes", TopicID: "top-frac-operacoes",
		Kind: KindShortAnswer, Mode: ModeN2, Difficulty: 3,
		Prompt:           "Explique como dividir uma fração por outra fração.",
		CorrectAnswer:    "multiplicar pela fração inversa",
		AcceptedKeywords: []string{"multiplicar", "inversa"},
		Explanation:      "Dividir por uma fração equivale a multiplicar pela sua inversa.",
		ErrorKind:        ErrorConcept,
	},
	{
		ID: "item-frac-4", UnitID: "mat-fracoes", TopicID: "top-frac-equivalencia",
		Kind: KindMultipleChoice, Mode: ModeMixed, Difficulty: 2,
		Prompt:        "Qual fração é maior?",
		Options:       []string{"3/4", "2/3", "5/8", "7/12"},
		CorrectAnswer: "3/4",
		Explanation:   "Com denominador comum 24: 18/24 > 16/24 > 15/24 > 14/24.",
		ErrorKind:     ErrorCalculation,
	},

	// Equações do 1º grau
	{
		ID: "item-eq-1", UnitID: "mat-equacoes-1grau", TopicID: "top-eq-isolamento",
		Kind: KindShortAnswer, Mode: ModeN1, Difficulty: 1,
		Prompt:        "Resolva: 2x + 6 = 14. Qual o valor de x?",
		CorrectAnswer: "4",
		Explanation:   "2x = 14 - 6 = 8, logo x = 4.",
		ErrorKind:     ErrorCalculation,
	},
	{
		ID: "item-eq-2", UnitID: "mat-equacoes-1grau", TopicID: "top-eq-isolamento",
		Kind: KindTrueFalse, Mode: ModeN1, Difficulty: 1,
		Prompt:        "Na equação x - 5 = 10, o valor de x é 5.",
		CorrectAnswer: "falso",
		Explanation:   "Somando 5 aos dois lados, x = 15.",
		ErrorKind:     ErrorCalculation,
	},
	{
		ID: "item-eq-3", UnitID: "mat-equacoes-1grau", TopicID: "top-eq-problemas",
		Kind: KindMultipleChoice, Mode: ModeN2, Difficulty: 3,
		Prompt:        "O dobro de um número somado a 7 dá 23. Qual é o número?",
		Options:       []string{"8", "15", "9", "16"},
		CorrectAnswer: "8",
		Explanation:   "2n + 7 = 23 leva a 2n = 16 e n = 8.",
		ErrorKind:     ErrorConcept,
	},

	// Geometria Plana. Keep exactly two N1 templates: unit-source plans
	// cycle them in order (item-geo-1 then item-geo-2).
	{
		ID: "item-geo-1", UnitID: "mat-geometria-plana", TopicID: "top-geo-areas",
		Kind: KindMultipleChoice, Mode: ModeN1, Difficulty: 1,
		Prompt:        "Qual é a área de um retângulo de base 8 cm e altura 5 cm?",
		Options:       []string{"40 cm²", "26 cm²", "13 cm²", "80 cm²"},
		CorrectAnswer: "40 cm²",
		Explanation:   "Área do retângulo = base × altura = 8 × 5 = 40 cm².",
		ErrorKind:     ErrorCalculation,
	},
	{
		ID: "item-geo-2", UnitID: "mat-geometria-plana", TopicID: "top-geo-angulos",
		Kind: KindTrueFalse, Mode: ModeN1, Difficulty: 1,
		Prompt:        "A soma dos ângulos internos de um triângulo é 180 graus.",
		CorrectAnswer: "verdadeiro",
		Explanation:   "Em qualquer triângulo a soma dos ângulos internos é 180°.",
		ErrorKind:     ErrorConcept,
	},
	{
		ID: "item-geo-3", UnitID: "mat-geometria-plana", TopicID: "top-geo-areas",
		Kind: KindShortAnswer, Mode: ModeN2, Difficulty: 3,
		Prompt:           "Como se calcula a área de um triângulo?",
		CorrectAnswer:    "base vezes altura dividido por dois",
		AcceptedKeywords: []string{"base", "altura", "dois"},
		Explanation:      "Área do triângulo = (base × altura) / 2.",
		ErrorKind:        ErrorConcept,
	},

	// Funções
	{
		ID: "item-fun-1", UnitID: "mat-funcoes", TopicID: "top-fun-afim",
		Kind: KindShortAnswer, Mode: ModeN1, Difficulty: 2,
		Prompt:        "Na função f(x) = 3x - 6, qual é a raiz?",
		CorrectAnswer: "2",
		Explanation:   "3x - 6 = 0 leva a x = 2.",
		ErrorKind:     ErrorCalculation,
	},
	{
		ID: "item-fun-2", UnitID: "mat-funcoes", TopicID: "top-fun-quadratica",
		Kind: KindTrueFalse, Mode: ModeN2, Difficulty: 3,
		Prompt:        "Se o coeficiente a é negativo, a parábola tem concavidade para cima.",
		CorrectAnswer: "falso",
		Explanation:   "Com a < 0 a concavidade é para baixo.",
		ErrorKind:     ErrorConcept,
	},
	{
		ID: "item-fun-3", UnitID: "mat-funcoes", TopicID: "top-fun-quadratica",
		Kind: KindMultipleChoice, Mode: ModeMixed, Difficulty: 4,
		Prompt:        "Quantas raízes reais tem uma quadrática com discriminante negativo?",
		Options:       []string{"Nenhuma", "Uma", "Duas", "Infinitas"},
		CorrectAnswer: "Nenhuma",
		Explanation:   "Delta negativo significa que não há raízes reais.",
		ErrorKind:     ErrorConcept,
	},

	// Cinemática
	{
		ID: "item-cin-1", UnitID: "fis-cinematica", TopicID: "top-cin-mu",
		Kind: KindShortAnswer, Mode: ModeN1, Difficulty: 2,
		Prompt:        "Um carro percorre 120 km em 2 horas. Qual a velocidade média em km/h?",
		CorrectAnswer: "60",
		Explanation:   "Velocidade média = distância / tempo = 120 / 2 = 60 km/h.",
		ErrorKind:     ErrorCalculation,
	},
	{
		ID: "item-cin-2", UnitID: "fis-cinematica", TopicID: "top-cin-mu",
		Kind: KindTrueFalse, Mode: ModeN1, Difficulty: 1,
		Prompt:        "No movimento uniforme a velocidade é constante.",
		CorrectAnswer: "verdadeiro",
		Explanation:   "Por definição, o MU tem velocidade constante e aceleração nula.",
		ErrorKind:     ErrorConcept,
	},
	{
		ID: "item-cin-3", UnitID: "fis-cinematica", TopicID: "top-cin-muv",
		Kind: KindMultipleChoice, Mode: ModeN2, Difficulty: 3,
		Prompt:        "Qual equação do MUV não depende do tempo?",
		Options:       []string{"Torricelli", "Função horária da posição", "Função horária da velocidade", "Velocidade média"},
		CorrectAnswer: "Torricelli",
		Explanation:   "v² = v0² + 2aΔs relaciona velocidades e deslocamento sem o tempo.",
		ErrorKind:     ErrorConcept,
	},

	// Dinâmica
	{
		ID: "item-din-1", UnitID: "fis-dinamica", TopicID: "top-din-leis",
		Kind: KindShortAnswer, Mode: ModeN1, Difficulty: 2,
		Prompt:        "Qual força resultante acelera uma massa de 4 kg a 3 m/s²? (em N)",
		CorrectAnswer: "12",
		Explanation:   "F = m·a = 4 × 3 = 12 N.",
		ErrorKind:     ErrorCalculation,
	},
	{
		ID: "item-din-2", UnitID: "fis-dinamica", TopicID: "top-din-leis",
		Kind: KindShortAnswer, Mode: ModeN2, Difficulty: 3,
		Prompt:           "Enuncie a primeira lei de Newton.",
		CorrectAnswer:    "um corpo permanece em repouso ou em movimento retilíneo uniforme",
		AcceptedKeywords: []string{"repouso", "movimento"},
		Explanation:      "É a lei da inércia: sem força resultante, o estado de movimento não muda.",
		ErrorKind:        ErrorConcept,
	},

	// Estrutura Atômica
	{
		ID: "item-atm-1", UnitID: "qui-estrutura-atomica", TopicID: "top-atm-modelos",
		Kind: KindMultipleChoice, Mode: ModeN1, Difficulty: 2,
		Prompt:        "Qual modelo atômico introduziu níveis de energia quantizados?",
		Options:       []string{"Bohr", "Dalton", "Thomson", "Rutherford"},
		CorrectAnswer: "Bohr",
		Explanation:   "Bohr propôs órbitas com energias definidas para os elétrons.",
		ErrorKind:     ErrorConcept,
	},
	{
		ID: "item-atm-2", UnitID: "qui-estrutura-atomica", TopicID: "top-atm-distribuicao",
		Kind: KindTrueFalse, Mode: ModeN1, Difficulty: 1,
		Prompt:        "O número atômico corresponde ao número de prótons.",
		CorrectAnswer: "verdadeiro",
		Explanation:   "Z é, por definição, a quantidade de prótons no núcleo.",
		ErrorKind:     ErrorConcept,
	},
	{
		ID: "item-atm-3", UnitID: "qui-estrutura-atomica", TopicID: "top-atm-distribuicao",
		Kind: KindShortAnswer, Mode: ModeN2, Difficulty: 3,
		Prompt:        "Quantos elétrons cabem no subnível d?",
		CorrectAnswer: "10",
		Explanation:   "O subnível d comporta até 10 elétrons.",
		ErrorKind:     ErrorCalculation,
	},

	// Estequiometria
	{
		ID: "item-est-1", UnitID: "qui-estequiometria", TopicID: "top-est-balanceamento",
		Kind: KindTrueFalse, Mode: ModeN1, Difficulty: 2,
		Prompt:        "Em uma reação balanceada, a massa total se conserva.",
		CorrectAnswer: "verdadeiro",
		Explanation:   "Lei de Lavoisier: nada se perde, tudo se transforma.",
		ErrorKind:     ErrorConcept,
	},
	{
		ID: "item-est-2", UnitID: "qui-estequiometria", TopicID: "top-est-mol",
		Kind: KindShortAnswer, Mode: ModeN2, Difficulty: 4,
		Prompt:        "Quantos gramas tem 1 mol de água (H2O)?",
		CorrectAnswer: "18",
		Explanation:   "2 × 1 + 16 = 18 g/mol.",
		ErrorKind:     ErrorCalculation,
	},
}

var seedTracks = []TrackTemplate{
	{
		ID:         "track-mat-fundamental",
		SubjectKey: "matematica",
		Name:       "Base do Fundamental II",
		Objective:  "reforco",
		UnitIDs:    []string{"mat-fracoes", "mat-equacoes-1grau", "mat-geometria-plana"},
	},
	{
		ID:         "track-mat-medio",
		SubjectKey: "matematica",
		Name:       "Matemática para o Médio",
		Objective:  "vestibular",
		UnitIDs:    []string{"mat-geometria-plana", "mat-funcoes"},
	},
	{
		ID:         "track-ciencias-medio",
		SubjectKey: "fisica",
		Name:       "Ciências da Natureza",
		Objective:  "enem",
		UnitIDs:    []string{"fis-cinematica", "fis-dinamica", "qui-estequiometria"},
	},
}

var seedInsights = []Insight{
	{
		ID:          "ins-frac-eq",
		Title:       "Frações aparecem nas equações",
		Body:        "Dominar operações com frações evita a maior parte dos erros ao isolar a incógnita em equações.",
		SubjectKeys: []string{"matematica"},
		UnitIDs:     []string{"mat-fracoes", "mat-equacoes-1grau"},
	},
	{
		ID:          "ins-fun-cin",
		Title:       "Funções descrevem movimento",
		Body:        "A função horária do movimento uniforme é uma função afim: mesmo gráfico, outra roupagem.",
		SubjectKeys: []string{"matematica", "fisica"},
		UnitIDs:     []string{"mat-funcoes", "fis-cinematica"},
	},
	{
		ID:          "ins-est-eq",
		Title:       "Proporção é equação",
		Body:        "Cálculos estequiométricos são regras de três: monte a proporção como uma equação do 1º grau.",
		SubjectKeys: []string{"quimica", "matematica"},
		UnitIDs:     []string{"qui-estequiometria", "mat-equacoes-1grau"},
	},
	{
		ID:          "ins-geo-fis",
		Title:       "Geometria sustenta a Física",
		Body:        "Decompor vetores e interpretar gráficos de movimento usa diretamente ângulos e áreas da geometria plana.",
		SubjectKeys: []string{"fisica"},
		UnitIDs:     []string{"mat-geometria-plana", "fis-cinematica", "fis-dinamica"},
	},
	{
		ID:          "ins-atm-base",
		Title:       "Estrutura atômica primeiro",
		Body:        "Sem distribuição eletrônica não há como entender ligações nem balanceamento: revise antes de avançar.",
		SubjectKeys: []string{"quimica"},
		UnitIDs:     []string{"qui-estrutura-atomica", "qui-estequiometria"},
	},
}
