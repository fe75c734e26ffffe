package verbpack

import "github.com/abhisek/verbo/internal/conjug"

// Spanish returns the builtin Spanish irregular pack: fifteen high-frequency
// verbs with full present and preterite paradigms. Note llegar, whose
// preterite is regular apart from the yo spelling change; its pack entry
// still wins for all persons once present.
func Spanish() conjug.Pack {
	return conjug.Pack{
		"ser": {
			conjug.TensePresent:   forms("soy", "eres", "es", "somos", "sois", "son"),
			conjug.TensePreterite: forms("fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"),
		},
		"ir": {
			conjug.TensePresent:   forms("voy", "vas", "va", "vamos", "vais", "van"),
			conjug.TensePreterite: forms("fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"),
		},
		"tener": {
			conjug.TensePresent:   forms("tengo", "tienes", "tiene", "tenemos", "tenéis", "tienen"),
			conjug.TensePreterite: forms("tuve", "tuviste", "tuvo", "tuvimos", "tuvisteis", "tuvieron"),
		},
		"hacer": {
			conjug.TensePresent:   forms("hago", "haces", "hace", "hacemos", "hacéis", "hacen"),
			conjug.TensePreterite: forms("hice", "hiciste", "hizo", "hicimos", "hicisteis", "hicieron"),
		},
		"decir": {
			conjug.TensePresent:   forms("digo", "dices", "dice", "decimos", "decís", "dicen"),
			conjug.TensePreterite: forms("dije", "dijiste", "dijo", "dijimos", "dijisteis", "dijeron"),
		},
		"poder": {
			conjug.TensePresent:   forms("puedo", "puedes", "puede", "podemos", "podéis", "pueden"),
			conjug.TensePreterite: forms("pude", "pudiste", "pudo", "pudimos", "pudisteis", "pudieron"),
		},
		"poner": {
			conjug.TensePresent:   forms("pongo", "pones", "pone", "ponemos", "ponéis", "ponen"),
			conjug.TensePreterite: forms("puse", "pusiste", "puso", "pusimos", "pusisteis", "pusieron"),
		},
		"venir": {
			conjug.TensePresent:   forms("vengo", "vienes", "viene", "venimos", "venís", "vienen"),
			conjug.TensePreterite: forms("vine", "viniste", "vino", "vinimos", "vinisteis", "vinieron"),
		},
		"dar": {
			conjug.TensePresent:   forms("doy", "das", "da", "damos", "dais", "dan"),
			conjug.TensePreterite: forms("di", "diste", "dio", "dimos", "disteis", "dieron"),
		},
		"saber": {
			conjug.TensePresent:   forms("sé", "sabes", "sabe", "sabemos", "sabéis", "saben"),
			conjug.TensePreterite: forms("supe", "supiste", "supo", "supimos", "supisteis", "supieron"),
		},
		"querer": {
			conjug.TensePresent:   forms("quiero", "quieres", "quiere", "queremos", "queréis", "quieren"),
			conjug.TensePreterite: forms("quise", "quisiste", "quiso", "quisimos", "quisisteis", "quisieron"),
		},
		"llegar": {
			conjug.TensePresent:   forms("llego", "llegas", "llega", "llegamos", "llegáis", "llegan"),
			conjug.TensePreterite: forms("llegué", "llegaste", "llegó", "llegamos", "llegasteis", "llegaron"),
		},
		"ver": {
			conjug.TensePresent:   forms("veo", "ves", "ve", "vemos", "veis", "ven"),
			conjug.TensePreterite: forms("vi", "viste", "vio", "vimos", "visteis", "vieron"),
		},
		"salir": {
			conjug.TensePresent:   forms("salgo", "sales", "sale", "salimos", "salís", "salen"),
			conjug.TensePreterite: forms("salí", "saliste", "salió", "salimos", "salisteis", "salieron"),
		},
		"estar": {
			conjug.TensePresent:   forms("estoy", "estás", "está", "estamos", "estáis", "están"),
			conjug.TensePreterite: forms("estuve", "estuviste", "estuvo", "estuvimos", "estuvisteis", "estuvieron"),
		},
	}
}

// forms builds a person map from the six forms in canonical person order.
func forms(yo, tu, el, nosotros, vosotros, ellos string) map[conjug.Person]string {
	return map[conjug.Person]string{
		conjug.PersonYo:       yo,
		conjug.PersonTu:       tu,
		conjug.PersonEl:       el,
		conjug.PersonNosotros: nosotros,
		conjug.PersonVosotros: vosotros,
		conjug.PersonEllos:    ellos,
	}
}
