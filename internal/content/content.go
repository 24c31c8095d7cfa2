// Package content holds the fixed course information shown on the site.
package content

import "nihongoclass/internal/models"

// SiteTitle is used in page titles and the footer
const SiteTitle = "고2 일본어·일본문화"

var Highlights = []models.Highlight{
	{Emoji: "🗣️", Title: "실전 회화", Subtitle: "면접·전화·이메일"},
	{Emoji: "🎎", Title: "문화·연구", Subtitle: "리서치·전시"},
	{Emoji: "🧭", Title: "진로 연계", Subtitle: "콘텐츠·관광·통번역"},
	{Emoji: "🏆", Title: "성취 지원", Subtitle: "JLPT N3~N2"},
}

var WhyCards = []models.InfoCard{
	{
		Title: "학습 장점",
		Items: []string{
			"한글과 어순 유사 → 문장 생성이 쉬움",
			"면접·전화·이메일 등 실제 상황 훈련",
			"프로젝트 결과물을 포트폴리오로 전환",
		},
	},
	{
		Title: "진로 연계",
		Items: []string{
			"관광·항공 서비스, 무역·유통",
			"게임·애니·음악 등 콘텐츠 산업",
			"통번역·국제교류·해외대학 진학",
		},
	},
}

var Levels = []models.Level{
	{
		Name:       "기초 다지기(고2)",
		Goals:      "히라가나·가타카나 완성, 기초 회화 리마인드, 자기소개·학교소개 업그레이드",
		Assessment: "퀴즈·말하기, 성찰 포트폴리오",
	},
	{
		Name:       "실전 회화·문형 확장(고2)",
		Goals:      "경어(존경·겸양) 기초, 면접·전화·이메일 표현, 상황별 문제 해결 대화",
		Assessment: "역할극·면접 시뮬, 협업 과제",
	},
	{
		Name:       "심화·진로 연계(고2)",
		Goals:      "프로젝트 프레젠테이션, 공민 이슈 토론 일본어, JLPT N3~N2 대비",
		Assessment: "프로젝트 발표·리서치 보고서·포트폴리오",
	},
}

// KeyExpressions are sample expressions per unit of the language course
var KeyExpressions = []string{
	"인사·경어: お世話になっております / よろしくお願いいたします",
	"면접: 志望動機は〜です / 強みは〜です",
	"전화·가게: 〜をお願いします / いくらですか / 予約できますか",
	"이메일: いつもお世話になっております。〜についてお問い合わせいたします。",
}

var CultureThemes = []models.CultureTheme{
	{Theme: "사계절 문화", Activities: "봄 사쿠라·여름 축제·가을 단풍·겨울 신년문화 심화 리서치"},
	{Theme: "전통·예술", Activities: "종이접기·서예·와가시 디자인 + 전시 큐레이션"},
	{Theme: "생활·요리", Activities: "오니기리·벤토 문화 분석, 젓가락 매너 캠페인 영상"},
	{Theme: "현대사회·대중문화", Activities: "애니·J-POP 가사 읽기, 일본 미디어 리터러시, 지역 PR 영상 제작"},
}

var Activities = []models.InfoCard{
	{Title: "롤플레이", Items: []string{"알바 면접, 전화 문의, 가게 주문, 길 안내 등 실전 대화"}},
	{Title: "문화 만들기", Items: []string{"풍령·테루테루보즈·와시츠 모형 + 전시 기획"}},
	{Title: "프로젝트", Items: []string{"일본 지역/기업 PR, 공민 이슈(환경·고령화·관광) 인포그래픽 제작"}},
	{Title: "교류 활동", Items: []string{"온라인 국제교류(학교·지역 소개, 공동 토론, 인터뷰)"}},
	{Title: "평가", Items: []string{"과정 중심(참여·협업·문제해결) + 프레젠테이션·포트폴리오"}},
}

var Calendar = []models.CalendarMonth{
	{Month: 3, Topic: "학기 OT·목표 설정·자기소개(리더십)"},
	{Month: 4, Topic: "경어 기초·정중 표현(면접·전화)"},
	{Month: 5, Topic: "학교생활·동아리 PR 스피치"},
	{Month: 6, Topic: "가게·알바 표현·가격·전화 주문"},
	{Month: 7, Topic: "진로 탐색·이메일·자기소개서 문형"},
	{Month: 8, Topic: "공민 연계 토론: SDGs·지역 문제"},
	{Month: 9, Topic: "여름 문화 주간·국제교류 준비"},
	{Month: 10, Topic: "지역 조사·인터뷰 기획(온라인 교류)"},
	{Month: 11, Topic: "프레젠테이션 스킬·데이터 시각화"},
	{Month: 12, Topic: "포트폴리오·말하기 종합 평가"},
}

var Events = []models.Event{
	{When: "5월", Description: "일본어 면접·스피치 챌린지"},
	{When: "7월", Description: "여름 문화 주간(풍령·우치와) + 교류 준비"},
	{When: "9~10월", Description: "온라인 국제교류(지역·공민 주제 토론)"},
	{When: "12월", Description: "종합 프로젝트 전시·포트폴리오 리뷰"},
}

var Vocabulary = []models.VocabWord{
	{Japanese: "ありがとう", Korean: "고마워", Pronunciation: "arigatou"},
	{Japanese: "ごめんなさい", Korean: "미안해", Pronunciation: "gomen nasai"},
	{Japanese: "ください", Korean: "주세요", Pronunciation: "kudasai"},
	{Japanese: "いくら", Korean: "얼마", Pronunciation: "ikura"},
	{Japanese: "たのしい", Korean: "즐겁다", Pronunciation: "tanoshii"},
	{Japanese: "面接", Korean: "면접", Pronunciation: "mensetsu"},
	{Japanese: "予約", Korean: "예약", Pronunciation: "yoyaku"},
	{Japanese: "履歴書", Korean: "이력서", Pronunciation: "rirekisho"},
}

var FAQ = []models.FAQItem{
	{
		Question: "일본어가 처음인데 따라갈 수 있나요?",
		Answer:   "네. 기초 리마인드 후 고2 수준 표현·경어로 확장합니다. 개별 보충도 제공해요.",
	},
	{
		Question: "일본문화 과목은 어떤가요?",
		Answer:   "만들기·리서치·전시까지 이어지는 프로젝트형 수업으로 심화 학습이 가능합니다.",
	},
	{
		Question: "평가가 부담스럽진 않나요?",
		Answer:   "과정 중심 평가로 성장 과정을 기록합니다. 발표·협업 능력도 반영해요.",
	},
	{
		Question: "진로에 도움이 되나요?",
		Answer:   "콘텐츠·관광·서비스·국제교류·통번역 등 다양한 진로와 연결되며 JLPT N3~N2 대비에도 도움이 됩니다.",
	},
}
