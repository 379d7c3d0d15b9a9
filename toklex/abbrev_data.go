package toklex

// builtinAbbrevConf is the built-in abbreviation dictionary, written in
// the same configuration format that external files use so that the
// parser is exercised on every start.
const builtinAbbrevConf = `
# Built-in Icelandic abbreviations.
# abbrev = wordform | variant | pos | category | stem | inflection

[abbreviations]
a.m.k. = að minnsta kosti | - | ao | frasi | a.m.k. | -
alls. = allsherjar- | - | lo | skst | alls. | -
ath. = athuga | - | so | skst | ath. | -
bls. = blaðsíða | - | kvk | skst | bls. | -
dags. = dagsettur | - | lo | skst | dags. | -
dr. = doktor | - | kk | skst | dr. | -
e.Kr. = eftir Krist | - | ao | frasi | e.Kr. | -
e.t.v. = ef til vill | - | ao | frasi | e.t.v. | -
f.Kr. = fyrir Krist | - | ao | frasi | f.Kr. | -
f.h. = fyrir hönd | - | ao | frasi | f.h. | -
fél. = félag | - | hk | skst | fél. | -
frh. = framhald | - | hk | skst | frh. | -
frk. = fröken | - | kvk | skst | frk. | -
frú = frú | - | kvk | skst | frú | -
gr. = grein | - | kvk | skst | gr. | -
h.f. = hlutafélag | - | hk | skst | h.f. | -
hf. = hlutafélag | - | hk | skst | hf. | -
hr. = herra | - | kk | skst | hr. | -
hv. = háttvirtur | - | lo | skst | hv. | -
hæstv. = hæstvirtur | - | lo | skst | hæstv. | -
kl. = klukkan | - | kvk | skst | kl. | -
klst. = klukkustund | - | kvk | skst | klst. | -
kr. = króna | - | kvk | skst | kr. | -
m.a. = meðal annars | - | ao | frasi | m.a. | -
m.a.s. = meira að segja | - | ao | frasi | m.a.s. | -
m.v. = miðað við | - | ao | frasi | m.v. | -
mín. = mínúta | - | kvk | skst | mín. | -
n.k. = næstkomandi | - | lo | skst | n.k. | -
nk. = næstkomandi | - | lo | skst | nk. | -
nr. = númer | - | hk | skst | nr. | -
o.fl. = og fleira | - | ao | frasi | o.fl. | -
o.s.frv. = og svo framvegis | - | ao | frasi | o.s.frv. | -
o.þ.h. = og þess háttar | - | ao | frasi | o.þ.h. | -
próf. = prófessor | - | kk | skst | próf. | -
s.s. = svo sem | - | ao | frasi | s.s. | -
sbr. = samanber | - | ao | skst | sbr. | -
sek. = sekúnda | - | kvk | skst | sek. | -
skv. = samkvæmt | - | fs | skst | skv. | -
sl. = síðastliðinn | - | lo | skst | sl. | -
sr. = séra | - | kk | skst | sr. | -
st. = stig | - | hk | skst | st. | -
stk. = stykki | - | hk | skst | stk. | -
sþ. = samþykkt | - | kvk | skst | sþ. | -
t.a.m. = til að mynda | - | ao | frasi | t.a.m. | -
t.d. = til dæmis | - | ao | frasi | t.d. | -
t.h. = til hægri | - | ao | frasi | t.h. | -
t.v. = til vinstri | - | ao | frasi | t.v. | -
u.þ.b. = um það bil | - | ao | frasi | u.þ.b. | -
uppl. = upplýsingar | - | kvk | skst | uppl. | -
vs. = versus | - | st | skst | vs. | -
þ.á m. = þar á meðal | - | ao | frasi | þ.á m. | -
þ.e. = það er | - | ao | frasi | þ.e. | -
þ.e.a.s. = það er að segja | - | ao | frasi | þ.e.a.s. | -
þ.m.t. = þar með talið | - | ao | frasi | þ.m.t. | -
ehf. = einkahlutafélag | - | hk | skst | ehf. | -
sf. = sameignarfélag | - | hk | skst | sf. | -
þús. = þúsund | - | hk | skst | þús. | -
millj. = milljón | - | kvk | skst | millj. | -
mrð. = milljarður | - | kk | skst | mrð. | -
ma. = milljarður | - | kk | skst | ma. | -

# month abbreviations
jan. = janúar | - | kk | mán | jan. | -
feb. = febrúar | - | kk | mán | feb. | -
mar. = mars | - | kk | mán | mar. | -
apr. = apríl | - | kk | mán | apr. | -
jún. = júní | - | kk | mán | jún. | -
júl. = júlí | - | kk | mán | júl. | -
ág. = ágúst | - | kk | mán | ág. | -
ágú. = ágúst | - | kk | mán | ágú. | -
sep. = september | - | kk | mán | sep. | -
sept. = september | - | kk | mán | sept. | -
okt. = október | - | kk | mán | okt. | -
nóv. = nóvember | - | kk | mán | nóv. | -
des. = desember | - | kk | mán | des. | -

[name_finishers]
dr.
frk.
frú
hr.
hv.
hæstv.
próf.
sr.

[not_finishers]
m.a.
kl.
nr.
sbr.
skv.
t.d.
þ.e.
u.þ.b.

[wrong_forms]
amk. = a.m.k.
etv. = e.t.v.
mas. = m.a.s.
osfrv. = o.s.frv.
oþh. = o.þ.h.
tam. = t.a.m.
uþb. = u.þ.b.
þeas. = þ.e.a.s.
`
